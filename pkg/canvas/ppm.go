package canvas

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// maxLineLength is the longest line a PPM file may contain
const maxLineLength = 70

// PPM encodes the canvas as a plain (P3) PPM image
func (c *Canvas) PPM() string {
	var sb strings.Builder
	// strings.Builder never fails
	_ = c.WritePPM(&sb)
	return sb.String()
}

// WritePPM writes the canvas as a plain (P3) PPM image. Each canvas row
// starts a new line and long rows wrap at whitespace so no line exceeds
// 70 characters. The output ends with a newline.
func (c *Canvas) WritePPM(w io.Writer) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "P3\n%d %d\n255\n", c.width, c.height)

	for y := 0; y < c.height; y++ {
		values := make([]string, 0, c.width*3)
		for x := 0; x < c.width; x++ {
			p := c.pixels[y*c.width+x]
			values = append(values, toByte(p.R), toByte(p.G), toByte(p.B))
		}
		for _, line := range wrap(values, maxLineLength) {
			bw.WriteString(line)
			bw.WriteByte('\n')
		}
	}
	return bw.Flush()
}

// toByte clamps v to [0,1] and scales it to 0..255
func toByte(v float64) string {
	v = math.Max(0, math.Min(1, v))
	return strconv.Itoa(int(math.Round(v * 255)))
}

// wrap joins words with single spaces into lines of at most width characters
func wrap(words []string, width int) []string {
	var lines []string
	var line strings.Builder
	for _, word := range words {
		if line.Len() > 0 && line.Len()+1+len(word) > width {
			lines = append(lines, line.String())
			line.Reset()
		}
		if line.Len() > 0 {
			line.WriteByte(' ')
		}
		line.WriteString(word)
	}
	return append(lines, line.String())
}
