package main

import (
	"os"

	"github.com/verte-zerg/worklog/internal/model"
)

func recordWithMinutes(minutes string) model.WorkEntry {
	return model.WorkEntry{Date: "2024-01-01", Minutes: minutes, PayRate: "10"}
}

func writeFile(path, content string) error {
	return os.WriteFile(path, []byte(content), 0o644)
}
