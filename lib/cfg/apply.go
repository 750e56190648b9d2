package cfg

import (
	"os"
	"strings"

	"github.com/cs2cfg/crosshairctl/lib/crosshair"
	"github.com/samber/oops"
)

// Apply writes a profile's cl_crosshair* assignments into the config file
// at path. Existing crosshair lines are replaced rather than duplicated,
// so applying twice is idempotent; a missing file is created. Other lines
// are preserved untouched.
func Apply(p crosshair.Profile, path string) error {
	if err := p.Validate(); err != nil {
		return err
	}

	convars := p.ConVars()
	owned := make(map[string]bool, len(convars))
	for _, cv := range convars {
		owned[cv.Name] = true
	}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return oops.With("path", path).Wrapf(err, "reading config file")
	}

	var kept []string
	if len(data) > 0 {
		for _, line := range strings.Split(strings.TrimRight(string(data), "\n"), "\n") {
			name, _, _ := strings.Cut(strings.TrimSpace(line), " ")
			if owned[name] {
				continue
			}
			kept = append(kept, line)
		}
	}

	var sb strings.Builder
	for _, line := range kept {
		sb.WriteString(line)
		sb.WriteByte('\n')
	}
	for _, cv := range convars {
		sb.WriteString(cv.Name)
		sb.WriteByte(' ')
		sb.WriteString(cv.Value)
		sb.WriteByte('\n')
	}

	if err := os.WriteFile(path, []byte(sb.String()), 0o644); err != nil {
		return oops.With("path", path).Wrapf(err, "writing config file")
	}

	log.WithField("path", path).Debug("Crosshair applied to config")
	return nil
}
