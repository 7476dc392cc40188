package models

import (
	"fmt"

	"github.com/vmihailenco/msgpack/v5"
)

// ValueKind тип значения в записи изменения.
// Значение переносится без потерь: целые и дробные числа
// не смешиваются, отсутствие значения кодируется явно.
type ValueKind uint8

// Поддерживаемые типы значений
const (
	KindNull ValueKind = iota
	KindBool
	KindInt
	KindFloat
	KindString
)

// Value типизированное значение поля строки.
// Конструкторы NullValue/BoolValue/IntValue/FloatValue/StringValue
// гарантируют согласованность kind и содержимого.
type Value struct {
	Str   string    `msgpack:"s,omitempty"` // Str строковое значение (для KindString)
	Int   int64     `msgpack:"i,omitempty"` // Int целое значение (для KindInt)
	Float float64   `msgpack:"f,omitempty"` // Float дробное значение (для KindFloat)
	Kind  ValueKind `msgpack:"k"`           // Kind тип значения
	Bool  bool      `msgpack:"b,omitempty"` // Bool булево значение (для KindBool)
}

// NullValue возвращает явное отсутствие значения
func NullValue() Value { return Value{Kind: KindNull} }

// BoolValue возвращает булево значение
func BoolValue(v bool) Value { return Value{Kind: KindBool, Bool: v} }

// IntValue возвращает целое значение
func IntValue(v int64) Value { return Value{Kind: KindInt, Int: v} }

// FloatValue возвращает дробное значение
func FloatValue(v float64) Value { return Value{Kind: KindFloat, Float: v} }

// StringValue возвращает строковое значение
func StringValue(v string) Value { return Value{Kind: KindString, Str: v} }

// IsNull сообщает, что значение отсутствует
func (v Value) IsNull() bool { return v.Kind == KindNull }

// Interface возвращает значение как interface{} для записи в хранилище.
// Для KindNull возвращается nil.
func (v Value) Interface() interface{} {
	switch v.Kind {
	case KindBool:
		return v.Bool
	case KindInt:
		return v.Int
	case KindFloat:
		return v.Float
	case KindString:
		return v.Str
	default:
		return nil
	}
}

// Equal сравнивает два значения с учетом типа
func (v Value) Equal(other Value) bool {
	if v.Kind != other.Kind {
		return false
	}
	switch v.Kind {
	case KindBool:
		return v.Bool == other.Bool
	case KindInt:
		return v.Int == other.Int
	case KindFloat:
		return v.Float == other.Float
	case KindString:
		return v.Str == other.Str
	default:
		return true
	}
}

// String возвращает человекочитаемое представление значения
func (v Value) String() string {
	switch v.Kind {
	case KindBool:
		return fmt.Sprintf("%t", v.Bool)
	case KindInt:
		return fmt.Sprintf("%d", v.Int)
	case KindFloat:
		return fmt.Sprintf("%g", v.Float)
	case KindString:
		return v.Str
	default:
		return "null"
	}
}

// ChangeRecord элементарная единица изменения: одно поле одной строки.
// Согласно алгоритму LWW (Last-Write-Wins) при конфликте выигрывает
// запись с большим Timestamp; порядок меток тотальный, поэтому
// результат не зависит от порядка применения.
type ChangeRecord struct {
	Dataset   string `msgpack:"d"` // Dataset имя набора данных (таблицы)
	Row       string `msgpack:"r"` // Row идентификатор строки
	Column    string `msgpack:"c"` // Column имя поля
	Timestamp string `msgpack:"t"` // Timestamp строковая форма гибридной метки времени
	Value     Value  `msgpack:"v"` // Value новое значение поля
}

// ChangeSet упорядоченный набор изменений, передаваемый за один обмен
type ChangeSet struct {
	Records []ChangeRecord `msgpack:"records"`
}

// EncodeChangeSet сериализует набор изменений в компактный бинарный формат.
// Именно эти байты шифруются перед отправкой на сервер.
func EncodeChangeSet(cs *ChangeSet) ([]byte, error) {
	data, err := msgpack.Marshal(cs)
	if err != nil {
		return nil, fmt.Errorf("failed to encode change set: %w", err)
	}
	return data, nil
}

// DecodeChangeSet восстанавливает набор изменений из бинарного формата
func DecodeChangeSet(data []byte) (*ChangeSet, error) {
	var cs ChangeSet
	if err := msgpack.Unmarshal(data, &cs); err != nil {
		return nil, fmt.Errorf("failed to decode change set: %w", err)
	}
	return &cs, nil
}
