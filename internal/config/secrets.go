package config

import (
	"fmt"
	"os"
	"strings"
)

// readSecret читает секрет из стандартного пути Docker Secrets,
// с fallback'ом на переменную окружения (локальная разработка и тесты).
func readSecret(secretName, envName string) (string, error) {
	filePath := fmt.Sprintf("/run/secrets/%s", secretName)
	secretBytes, err := os.ReadFile(filePath)
	if err == nil {
		secret := strings.TrimSpace(string(secretBytes))
		if secret == "" {
			return "", fmt.Errorf("secret file %s is empty", filePath)
		}
		return secret, nil
	}

	if value := strings.TrimSpace(os.Getenv(envName)); value != "" {
		return value, nil
	}
	return "", fmt.Errorf("secret %q not found: no file %s and env %s is empty", secretName, filePath, envName)
}
