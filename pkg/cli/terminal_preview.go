package cli

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/png"
	"math"
	"os"
	"os/exec"
	"strings"

	"github.com/joho/godotenv"
)

// Terminal preview helper for Kitty, iTerm2-style inline images, Sixel and chafa.
//
// Backend selection:
//   - Terminals implementing the iTerm2 OSC 1337 inline file sequence
//     (iTerm2, WezTerm, Warp, Tabby, VSCode, ...) get that sequence.
//   - Kitty and kitty-compatible terminals (ghostty, Konsole) get the kitty
//     graphics protocol (chunked base64 inside ESC _G ... ESC \).
//   - Terminals likely to support Sixel (foot, Windows Terminal, patched st)
//     get the PNG piped through an external img2sixel.
//   - chafa on PATH renders a block-character approximation anywhere else.
//
// PREVIEW_BACKEND forces a backend ("kitty", "inline", "sixel", "chafa"); the
// detected backends still serve as fallbacks when the forced one fails.
//
// Debugging helper controlled by PREVIEW_DEBUG=1
var previewDebug bool

func init() {
	// .env is optional
	_ = godotenv.Load()

	debug := os.Getenv("PREVIEW_DEBUG")
	if debug == "1" || debug == "true" {
		previewDebug = true
	}
}

func debugf(format string, args ...interface{}) {
	if previewDebug {
		fmt.Fprintf(os.Stderr, "phold-preview: "+format+"\n", args...)
	}
}

func isKitty() bool {
	if os.Getenv("KITTY_WINDOW_ID") != "" {
		return true
	}
	term := strings.ToLower(os.Getenv("TERM"))
	// ghostty exposes the kitty graphics protocol as well
	if strings.Contains(term, "kitty") || strings.Contains(term, "ghostty") || strings.Contains(term, "ghost") {
		return true
	}
	// Konsole implements an older kitty compatibility mode
	return os.Getenv("KONSOLE_VERSION") != ""
}

// isInlineImageCapable detects terminals that implement the iTerm2-style
// OSC 1337 inline image sequence (WezTerm, Warp, Tabby, VSCode's terminal
// and others), via TERM_PROGRAM and common TERM substrings.
func isInlineImageCapable() bool {
	switch os.Getenv("TERM_PROGRAM") {
	case "iTerm.app", "WezTerm", "Warp", "Hyper", "vscode", "VSCode", "Tabby", "Bobcat":
		return true
	}
	term := strings.ToLower(os.Getenv("TERM"))
	if strings.Contains(term, "wezterm") || strings.Contains(term, "warp") ||
		strings.Contains(term, "tabby") || strings.Contains(term, "vscode") {
		return true
	}
	return os.Getenv("ITERM_SESSION_ID") != ""
}

// isSixelCapable is heuristic. SIXEL_PREVIEW=1 forces it for terminals we
// cannot identify from the environment.
func isSixelCapable() bool {
	if os.Getenv("SIXEL_PREVIEW") == "1" {
		return true
	}
	term := strings.ToLower(os.Getenv("TERM"))
	if strings.Contains(term, "foot") || strings.Contains(term, "st") || strings.Contains(term, "linux") {
		return true
	}
	// newer Windows Terminal builds support sixel
	return os.Getenv("WT_SESSION") != ""
}

// hasChafa reports whether the external 'chafa' binary is available in PATH.
// chafa works as a fallback for terminals without any inline image protocol.
func hasChafa() bool {
	if os.Getenv("CHAFAPREVIEW") == "1" {
		return true
	}
	_, err := exec.LookPath("chafa")
	return err == nil
}

// postImageNewlines picks how many blank lines to emit after an image so the
// prompt lands below it instead of on top of it.
func postImageNewlines(requestedRows int) int {
	switch {
	case requestedRows <= 0:
		return 1
	case requestedRows <= 2:
		return 1
	case requestedRows <= 6:
		return 2
	case requestedRows <= 20:
		return 3
	default:
		return 4
	}
}

// PreviewSupported returns true if the running environment likely supports a
// terminal inline preview. chafa availability counts as a valid fallback even
// when no inline/sixel protocol is detected.
func PreviewSupported() bool {
	supported := isKitty() || isInlineImageCapable() || isSixelCapable() || hasChafa()
	debugf("PreviewSupported -> %v (kitty=%v inline=%v sixel=%v chafa=%v)", supported, isKitty(), isInlineImageCapable(), isSixelCapable(), hasChafa())
	return supported
}

// PreviewImage encodes img as PNG and renders it in the terminal using the
// best available backend. PNG is accepted by every backend, kitty included.
func PreviewImage(img image.Image) error {
	if img == nil {
		return fmt.Errorf("nil image")
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return fmt.Errorf("png encode failed: %w", err)
	}
	return previewBytes(buf.Bytes(), computePreviewSize(img))
}

// PreviewSize conveys a target placement for terminal preview backends.
type PreviewSize struct {
	Cols        int // terminal character columns
	Rows        int // terminal character rows
	PixelWidth  int // approximate pixel width (Cols * cellWidth)
	PixelHeight int // approximate pixel height (Rows * cellHeight)
}

// computePreviewSize maps an image's pixel dimensions into a terminal
// character cell area, preserving the aspect ratio. Images are never scaled
// up, and the result is clamped to keep previews reasonably small.
func computePreviewSize(img image.Image) PreviewSize {
	w := img.Bounds().Dx()
	h := img.Bounds().Dy()

	// assumed character cell size in pixels
	const charW = 8
	const charH = 16
	const minCols = 6
	const minRows = 3
	const maxCols = 80
	const maxRows = 40

	scaleW := float64(maxCols*charW) / float64(w)
	scaleH := float64(maxRows*charH) / float64(h)
	scale := math.Min(1.0, math.Min(scaleW, scaleH))

	targetW := math.Round(float64(w) * scale)
	targetH := math.Round(float64(h) * scale)

	cols := int(math.Round(targetW / charW))
	rows := int(math.Round(targetH / charH))

	if cols < minCols {
		cols = minCols
	}
	if cols > maxCols {
		cols = maxCols
	}
	if rows < minRows {
		rows = minRows
	}
	if rows > maxRows {
		rows = maxRows
	}

	return PreviewSize{
		Cols:        cols,
		Rows:        rows,
		PixelWidth:  cols * charW,
		PixelHeight: rows * charH,
	}
}

type imageSender func(data []byte, size PreviewSize) error

// previewBytes tries each candidate backend in order until one succeeds. A
// PREVIEW_BACKEND override goes first; the detected backends follow as
// fallbacks. Inline is preferred among the detected ones because many modern
// terminals implement it reliably.
func previewBytes(blob []byte, size PreviewSize) error {
	if len(blob) == 0 {
		return fmt.Errorf("empty image blob")
	}

	var senders []imageSender
	switch v := strings.ToLower(os.Getenv("PREVIEW_BACKEND")); v {
	case "":
	case "kitty":
		senders = append(senders, sendKittyImage)
	case "inline", "iterm", "wezterm":
		senders = append(senders, sendInlineImage)
	case "sixel":
		senders = append(senders, sendSixelImage)
	case "chafa":
		senders = append(senders, sendChafaImage)
	default:
		debugf("unknown PREVIEW_BACKEND value: %s", v)
	}
	if isInlineImageCapable() {
		senders = append(senders, sendInlineImage)
	}
	if isKitty() {
		senders = append(senders, sendKittyImage)
	}
	if isSixelCapable() {
		senders = append(senders, sendSixelImage)
	}
	if hasChafa() {
		senders = append(senders, sendChafaImage)
	}

	if len(senders) == 0 {
		return fmt.Errorf("no preview protocol matched")
	}
	var lastErr error
	for _, send := range senders {
		if err := send(blob, size); err != nil {
			debugf("preview backend failed: %v", err)
			lastErr = err
			continue
		}
		return nil
	}
	return fmt.Errorf("terminal preview failed: %w", lastErr)
}

// sendKittyImage transmits PNG bytes using the kitty graphics protocol. The
// base64 payload is chunked into 4096-byte pieces; the first chunk carries
// the control keys (a=T transmit+display, f=100 PNG, t=d direct payload,
// q=2 suppress responses) plus the c/r placement area, later chunks only the
// m continuation flag.
func sendKittyImage(data []byte, size PreviewSize) error {
	if len(data) == 0 {
		return fmt.Errorf("no data")
	}
	debugf("sendKittyImage sending %d bytes (cols=%d rows=%d)", len(data), size.Cols, size.Rows)

	enc := base64.StdEncoding.EncodeToString(data)
	const chunkSize = 4096

	for pos := 0; pos < len(enc); pos += chunkSize {
		end := pos + chunkSize
		if end > len(enc) {
			end = len(enc)
		}
		chunk := enc[pos:end]
		mVal := "1"
		if end == len(enc) {
			mVal = "0"
		}

		var seq string
		if pos == 0 {
			seq = fmt.Sprintf("\x1b_Ga=T,f=100,t=d,q=2,c=%d,r=%d,m=%s;%s\x1b\\", size.Cols, size.Rows, mVal, chunk)
		} else {
			seq = "\x1b_Gm=" + mVal + ";" + chunk + "\x1b\\"
		}
		if _, err := os.Stdout.Write([]byte(seq)); err != nil {
			return err
		}
	}

	for i := 0; i < postImageNewlines(size.Rows); i++ {
		fmt.Println()
	}
	return nil
}

// sendInlineImage emits the iTerm2-style inline image OSC (1337) sequence
// with pixel width/height hints from the computed placement.
func sendInlineImage(data []byte, size PreviewSize) error {
	if len(data) == 0 {
		return fmt.Errorf("no data")
	}
	debugf("sendInlineImage sending %d bytes", len(data))

	enc := base64.StdEncoding.EncodeToString(data)
	meta := fmt.Sprintf("size=%d;", len(data))
	if size.PixelWidth > 0 && size.PixelHeight > 0 {
		meta += fmt.Sprintf("width=%dpx;height=%dpx;", size.PixelWidth, size.PixelHeight)
	}
	seq := "\x1b]1337;File=name=preview.png;inline=1;" + meta + ":" + enc + "\a"
	if _, err := os.Stdout.Write([]byte(seq)); err != nil {
		return err
	}

	for i := 0; i < postImageNewlines(0); i++ {
		fmt.Println()
	}
	return nil
}

// sendSixelImage pipes the PNG through an external img2sixel, which emits
// sixel directly to stdout. Implementing a sixel encoder here is out of
// scope; previewBytes falls back to the next backend when the tool is absent.
func sendSixelImage(data []byte, size PreviewSize) error {
	if len(data) == 0 {
		return fmt.Errorf("no data")
	}
	debugf("sendSixelImage invoking img2sixel for %d bytes", len(data))

	cmd := exec.Command("img2sixel", "-")
	cmd.Stdin = bytes.NewReader(data)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("img2sixel failed: %w", err)
	}

	for i := 0; i < postImageNewlines(0); i++ {
		fmt.Println()
	}
	return nil
}

// sendChafaImage invokes chafa to render a block-symbol approximation that
// works in most terminals. CHAFA_FILL and CHAFA_SYMBOLS override the symbol
// selection; NO_CHAFA=1 disables the backend entirely.
func sendChafaImage(data []byte, size PreviewSize) error {
	if len(data) == 0 {
		return fmt.Errorf("no data")
	}
	if os.Getenv("NO_CHAFA") == "1" {
		return fmt.Errorf("chafa usage disabled via NO_CHAFA=1")
	}
	if _, err := exec.LookPath("chafa"); err != nil {
		return fmt.Errorf("chafa not found in PATH: %w", err)
	}

	fill := os.Getenv("CHAFA_FILL")
	if fill == "" {
		fill = "block"
	}
	symbols := os.Getenv("CHAFA_SYMBOLS")
	if symbols == "" {
		symbols = "block"
	}
	args := []string{"--fill=" + fill, "--symbols=" + symbols, "-s", fmt.Sprintf("%dx%d", size.Cols, size.Rows), "-"}
	debugf("sendChafaImage invoking chafa %v for %d bytes", args, len(data))

	cmd := exec.Command("chafa", args...)
	cmd.Stdin = bytes.NewReader(data)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("chafa failed: %w", err)
	}

	for i := 0; i < postImageNewlines(size.Rows); i++ {
		fmt.Println()
	}
	return nil
}
