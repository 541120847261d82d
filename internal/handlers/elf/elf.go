// Package elf counts elves and shelves in free text.
package elf

import "strings"

type Count struct {
	Elf        int `json:"elf"`
	ElfOnShelf int `json:"elf on a shelf"`
	// Shelves without an elf on them
	Shelves int `json:"shelf with no elf on it"`
}

// CountLogic counts non-overlapping occurrences of each phrase.
func CountLogic(text string) Count {
	onShelf := strings.Count(text, "elf on a shelf")
	return Count{
		Elf:        strings.Count(text, "elf"),
		ElfOnShelf: onShelf,
		Shelves:    strings.Count(text, "shelf") - onShelf,
	}
}
