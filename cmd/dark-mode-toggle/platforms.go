package main

// Platform implementations register themselves with the factory.
import (
	_ "github.com/Haocen/dark-mode-toggle/internal/platform/darwin"
	_ "github.com/Haocen/dark-mode-toggle/internal/platform/linux"
	_ "github.com/Haocen/dark-mode-toggle/internal/platform/stub"
)
