//go:build darwin

package view

// Tk event modifier used for the numbered camera bindings.
const bindModifier = "Command"
