package dotenv

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

// Load читает переменные из env-файла (по умолчанию .env) и применяет флаги
// командной строки. Отсутствующий файл ошибкой не считается, уже заданные
// переменные окружения не перезаписываются.
func Load() (loaded bool, err error) {
	var (
		envFile  string
		portFlag string
	)
	flag.StringVar(&envFile, "env-file", ".env", "Path to the env file")
	flag.StringVar(&portFlag, "port", "", "Server port (overrides PORT environment variable)")
	flag.Parse()

	err = godotenv.Load(envFile)
	switch {
	case err == nil:
		loaded = true
	case errors.Is(err, fs.ErrNotExist):
	default:
		return false, fmt.Errorf("load %s: %w", envFile, err)
	}

	if portFlag != "" {
		if err := os.Setenv("PORT", portFlag); err != nil {
			return loaded, fmt.Errorf("failed to set PORT environment variable: %w", err)
		}
	}
	return loaded, nil
}
