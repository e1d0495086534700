package env

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

type EnvService struct {
	appEnv string
	notes  []string
}

// NewEnvService loads .env and then overlays .env.<APP_ENV>. Missing files
// are normal; what happened is kept in Notes for the caller to log, since
// the tools reserve stderr for their own diagnostics.
func NewEnvService() *EnvService {
	return NewEnvServiceFrom(".")
}

func NewEnvServiceFrom(dir string) *EnvService {
	appEnv := os.Getenv("APP_ENV")
	if appEnv == "" {
		appEnv = "dev"
	}

	s := &EnvService{appEnv: appEnv}

	base := filepath.Join(dir, ".env")
	if err := godotenv.Load(base); err != nil {
		s.note(base, err)
	}

	envFile := fmt.Sprintf("%s.%s", base, appEnv)
	if err := godotenv.Overload(envFile); err != nil {
		s.note(envFile, err)
	}

	return s
}

func (e *EnvService) note(file string, err error) {
	if errors.Is(err, fs.ErrNotExist) {
		e.notes = append(e.notes, fmt.Sprintf("no %s file found", file))
		return
	}
	e.notes = append(e.notes, fmt.Sprintf("could not load %s: %v", file, err))
}

func (e *EnvService) AppEnv() string {
	return e.appEnv
}

func (e *EnvService) Notes() []string {
	return e.notes
}
