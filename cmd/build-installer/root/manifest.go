package root

import (
	"time"

	"github.com/flarebyte/pyhelloworld/internal/buildinfo"
	"github.com/flarebyte/pyhelloworld/internal/gitrev"
	"github.com/flarebyte/pyhelloworld/internal/manifest"
	"github.com/flarebyte/pyhelloworld/internal/pipeline"
	"go.uber.org/zap"
)

func buildMode(testMode bool) string {
	if testMode {
		return "test"
	}
	return "admin"
}

// newManifestWriter records each compiled installer. The source commit comes
// from the checkout at repoDir, falling back to the linked-in commit.
func newManifestWriter(log *zap.Logger, repoDir string) pipeline.ManifestWriter {
	return func(st pipeline.State) error {
		commit := gitrev.HeadOrEmpty(repoDir)
		if commit == "" {
			commit = buildinfo.Commit
		}
		m := manifest.Manifest{
			Installer:    st.Output,
			Mode:         buildMode(st.Options.TestMode),
			SizeBytes:    st.Size,
			CompilerPath: st.Tool,
			AppVersion:   buildinfo.Version,
			Commit:       commit,
			BuiltAt:      time.Now(),
		}
		if st.VersionKnown {
			m.CompilerVersion = st.Version.String()
		}
		path, err := manifest.Write(m)
		if err != nil {
			return err
		}
		log.Debug("build manifest written", zap.String("path", path))
		return nil
	}
}
