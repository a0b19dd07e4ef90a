// Package utils содержит утилитарные функции, используемые в разных частях приложения
package utils

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/mattn/go-runewidth"
)

// TruncateString обрезает строку до указанной ширины на экране, добавляя "..." если строка длиннее
func TruncateString(s string, maxLen int) string {
	if maxLen <= 3 {
		return runewidth.Truncate(s, maxLen, "")
	}
	return runewidth.Truncate(s, maxLen, "...")
}

// PadRight дополняет строку пробелами до указанной ширины на экране
func PadRight(s string, width int) string {
	return runewidth.FillRight(s, width)
}

// Cell обрезает и выравнивает строку под колонку таблицы заданной ширины
func Cell(s string, width int) string {
	return PadRight(TruncateString(s, width), width)
}

// ExpandPath раскрывает ~ в начале пути
func ExpandPath(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}
