// Package magetasks provides mage build tasks for u8con.
//
// Task output goes through a code page adapter, so status glyphs survive on
// consoles that are not in UTF-8 mode.
package magetasks
