//go:build !darwin

package presenter

import "golang.design/x/hotkey"

const modifierLabel = "Ctrl"

var shortcutMods = []hotkey.Modifier{hotkey.ModCtrl}
