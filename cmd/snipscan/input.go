package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// extensionLanguages maps file extensions to language identifiers the
// adapter factory accepts.
var extensionLanguages = map[string]string{
	".py":   "python",
	".js":   "javascript",
	".jsx":  "javascript",
	".ts":   "typescript",
	".tsx":  "typescript",
	".java": "java",
	".cpp":  "cpp",
	".cc":   "cpp",
	".cxx":  "cpp",
	".hpp":  "cpp",
}

// readInput returns the code to analyze and a display file name.
// With no path argument, code is read from stdin.
func readInput(args []string) (code, fileName string, err error) {
	if len(args) == 0 {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), "", nil
	}

	path := args[0]
	data, err := os.ReadFile(path)
	if err != nil {
		return "", "", fmt.Errorf("reading %s: %w", path, err)
	}
	return string(data), filepath.Base(path), nil
}

// resolveLanguage picks the analysis language: an explicit flag wins,
// then the file extension, then the configured default.
func resolveLanguage(flagValue, fileName string) string {
	if flagValue != "" {
		return flagValue
	}
	if fileName != "" {
		ext := strings.ToLower(filepath.Ext(fileName))
		if lang, ok := extensionLanguages[ext]; ok {
			return lang
		}
	}
	return cfg.DefaultLanguage
}
