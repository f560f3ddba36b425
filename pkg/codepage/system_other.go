//go:build !windows

package codepage

// System returns the process's legacy code page. Platforms other than
// Windows have no distinct console encoding, so it is always UTF8.
func System() CodePage {
	return UTF8
}

// SystemConverter returns the portable converter.
func SystemConverter() Converter {
	return TextConverter{}
}
