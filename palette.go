package fx

import (
	"bufio"
	"os"
	"strconv"
	"strings"
)

// LoadPalette reads a palette file of whitespace-separated "R G B"
// triples, one color per line. Lines that do not hold exactly three
// integers are skipped. A missing or unreadable file is not an error;
// it yields a nil palette, matching the caller-side fallback behavior.
func LoadPalette(path string) []Color {
	if path == "" {
		return nil
	}
	f, err := os.Open(path)
	if err != nil {
		Logger().Warn("palette file not loaded", "path", path, "error", err)
		return nil
	}
	defer f.Close()

	var palette []Color
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		vals := strings.Fields(sc.Text())
		if len(vals) != 3 {
			continue
		}
		r, err1 := strconv.Atoi(vals[0])
		g, err2 := strconv.Atoi(vals[1])
		b, err3 := strconv.Atoi(vals[2])
		if err1 != nil || err2 != nil || err3 != nil {
			continue
		}
		palette = append(palette, Color{
			R: uint8(clampI(r, 0, 255)),
			G: uint8(clampI(g, 0, 255)),
			B: uint8(clampI(b, 0, 255)),
		})
	}
	if err := sc.Err(); err != nil {
		Logger().Warn("palette file read failed", "path", path, "error", err)
		return nil
	}
	return palette
}
