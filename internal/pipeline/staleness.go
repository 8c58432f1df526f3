package pipeline

import (
	"os"
	"time"
)

// Stamp is the existence and modification time of one file.
type Stamp struct {
	Exists  bool
	ModTime time.Time
	Size    int64
}

// StampOf stats path; any stat error counts as absent.
func StampOf(stat func(string) (os.FileInfo, error), path string) Stamp {
	st, err := stat(path)
	if err != nil {
		return Stamp{}
	}
	return Stamp{Exists: true, ModTime: st.ModTime(), Size: st.Size()}
}

// IsUpToDate reports whether output exists and is strictly newer than both
// inputs. A missing input always forces a rebuild.
func IsUpToDate(output, script, exe Stamp) bool {
	if !output.Exists || !script.Exists || !exe.Exists {
		return false
	}
	return output.ModTime.After(script.ModTime) && output.ModTime.After(exe.ModTime)
}
