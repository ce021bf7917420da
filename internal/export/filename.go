package export

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"litedata/pkg/types"

	"github.com/microcosm-cc/bluemonday"
)

var stripMarkup = bluemonday.StrictPolicy()

// ResolveFilename picks the local file name for a download. The server hint
// wins when usable; otherwise generated_data_<unix seconds>.<format>.
func ResolveFilename(hint string, format types.FileFormat, now time.Time) string {
	if name := sanitize(hint); name != "" {
		return name
	}
	return fmt.Sprintf("generated_data_%d.%s", now.Unix(), format)
}

func sanitize(hint string) string {
	name := stripMarkup.Sanitize(hint)
	// The policy escapes entities; undo the common ones so names stay literal.
	name = strings.NewReplacer("&amp;", "&", "&#39;", "'", "&#34;", "", "&quot;", "").Replace(name)
	name = strings.ReplaceAll(name, "\\", "/")
	name = filepath.Base(strings.TrimSpace(name))
	switch name {
	case ".", "..", "/", "":
		return ""
	}
	return name
}
