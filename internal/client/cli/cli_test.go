package cli

import (
	"fmt"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// joinArgs собирает аргументы Println в одну строку для проверок вывода
func joinArgs(a []any) string {
	return strings.TrimSuffix(fmt.Sprintln(a...), "\n")
}

// TestGetEncryptionPassword_FromEnvVar проверяет чтение пароля из переменной окружения
func TestGetEncryptionPassword_FromEnvVar(t *testing.T) {
	// Setup
	cli := &Cli{}
	testPassword := "test_env_password_123"
	require.NoError(t, os.Setenv("BOOKKEEPER_PASSWORD", testPassword))
	defer func() {
		require.NoError(t, os.Unsetenv("BOOKKEEPER_PASSWORD"))
	}()

	// Execute
	password, err := cli.getEncryptionPassword()

	// Assert
	require.NoError(t, err)
	assert.Equal(t, testPassword, password)
}

// TestGetEncryptionPassword_FromFile проверяет чтение пароля из файла
func TestGetEncryptionPassword_FromFile(t *testing.T) {
	// Setup
	testPassword := "test_file_password_456"

	// Создаем временный файл с паролем
	tmpfile, err := os.CreateTemp("", "password-*.txt")
	require.NoError(t, err)
	defer func() {
		require.NoError(t, os.Remove(tmpfile.Name()))
	}()

	_, err = tmpfile.WriteString(testPassword + "\n")
	require.NoError(t, err)
	require.NoError(t, tmpfile.Close())

	cli := &Cli{passwords: Passwords{FromFile: tmpfile.Name()}}

	// Execute
	password, err := cli.getEncryptionPassword()

	// Assert
	require.NoError(t, err)
	assert.Equal(t, testPassword, password)
}

// TestGetEncryptionPassword_FromCLIParam проверяет чтение пароля из CLI параметра
func TestGetEncryptionPassword_FromCLIParam(t *testing.T) {
	cli := &Cli{passwords: Passwords{FromArgs: "test_cli_password_789"}}

	password, err := cli.getEncryptionPassword()

	require.NoError(t, err)
	assert.Equal(t, "test_cli_password_789", password)
}

// TestGetEncryptionPassword_Priority проверяет приоритет источников
// Env var должен иметь приоритет над файлом и CLI параметром
func TestGetEncryptionPassword_Priority(t *testing.T) {
	// Setup
	envPassword := "env_password"
	require.NoError(t, os.Setenv("BOOKKEEPER_PASSWORD", envPassword))
	defer func() {
		require.NoError(t, os.Unsetenv("BOOKKEEPER_PASSWORD"))
	}()

	tmpfile, err := os.CreateTemp("", "password-*.txt")
	require.NoError(t, err)
	defer func() {
		require.NoError(t, os.Remove(tmpfile.Name()))
	}()
	_, err = tmpfile.WriteString("file_password\n")
	require.NoError(t, err)
	require.NoError(t, tmpfile.Close())

	cli := &Cli{passwords: Passwords{
		FromFile: tmpfile.Name(),
		FromArgs: "cli_password",
	}}

	// Execute
	password, err := cli.getEncryptionPassword()

	// Assert
	require.NoError(t, err)
	assert.Equal(t, envPassword, password)
}

// TestGetEncryptionPassword_EmptyFile проверяет ошибку при пустом файле
func TestGetEncryptionPassword_EmptyFile(t *testing.T) {
	tmpfile, err := os.CreateTemp("", "password-*.txt")
	require.NoError(t, err)
	defer func() {
		require.NoError(t, os.Remove(tmpfile.Name()))
	}()
	_, err = tmpfile.WriteString("\n")
	require.NoError(t, err)
	require.NoError(t, tmpfile.Close())

	cli := &Cli{passwords: Passwords{FromFile: tmpfile.Name()}}

	_, err = cli.getEncryptionPassword()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "password file is empty")
}
