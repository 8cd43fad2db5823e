//go:build darwin

package presenter

import "golang.design/x/hotkey"

const modifierLabel = "Cmd"

var shortcutMods = []hotkey.Modifier{hotkey.ModCmd}
