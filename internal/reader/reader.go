// Package reader loads the whole text source for searching
package reader

import (
	"errors"
	"fmt"
	"os"
	"unicode/utf8"
)

var ErrInvalidUTF8 = errors.New("stream did not contain valid UTF-8")

// SourceLoadError - источник не удалось прочитать: не существует, папка или нет прав
type SourceLoadError struct {
	Source string
	Err    error
}

func (e *SourceLoadError) Error() string {
	return fmt.Sprintf("failed to load source %q: %v", e.Source, e.Err)
}

func (e *SourceLoadError) Unwrap() error {
	return e.Err
}

func ReadInput(fileName string) (string, error) {
	// проверяем открывается ли файл
	info, err := os.Stat(fileName)
	if err != nil {
		return "", &SourceLoadError{Source: fileName, Err: err}
	}
	// проверяем не папка ли это
	if info.IsDir() {
		return "", &SourceLoadError{Source: fileName, Err: fmt.Errorf("%q is a directory", fileName)}
	}

	raw, err := os.ReadFile(fileName)
	if err != nil {
		return "", &SourceLoadError{Source: fileName, Err: err}
	}
	// текст должен быть валидным UTF-8, иначе ToLower и вывод исказят строки
	if !utf8.Valid(raw) {
		return "", &SourceLoadError{Source: fileName, Err: ErrInvalidUTF8}
	}
	return string(raw), nil
}
