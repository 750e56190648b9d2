// Package steam discovers Steam installations and the per-account CS2
// configuration directories beneath them.
package steam

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/cs2cfg/crosshairctl/lib/util"
	"github.com/samber/oops"
	"github.com/sirupsen/logrus"
)

// cs2AppID is the Steam application id CS2 stores its per-user
// configuration under.
const cs2AppID = "730"

// ErrSteamNotFound reports that no Steam installation with a userdata
// directory could be located.
var ErrSteamNotFound = oops.Errorf("steam installation not found")

// Account is one userdata entry: a numeric account id, its persona name
// when the local config reveals one, and the CS2 config directory if the
// account has ever run the game.
type Account struct {
	ID          string
	PersonaName string
	ConfigPath  string
	ConfigFiles []string
}

// HasConfig reports whether the account has a CS2 config directory.
func (a Account) HasConfig() bool {
	return a.ConfigPath != ""
}

// DisplayName returns the persona name when known, the account id
// otherwise.
func (a Account) DisplayName() string {
	if a.PersonaName != "" {
		return a.PersonaName
	}
	return a.ID
}

// candidateRoots lists the places a Steam installation is expected,
// relative to the user's home directory.
func candidateRoots(home string) []string {
	return []string{
		filepath.Join(home, ".steam", "steam"),
		filepath.Join(home, ".local", "share", "Steam"),
		filepath.Join(home, ".var", "app", "com.valvesoftware.Steam", ".local", "share", "Steam"),
	}
}

// FindRoot locates the Steam installation. An explicit override wins; the
// per-OS candidate paths are probed otherwise. A root only counts when its
// userdata directory exists.
func FindRoot(override string) (string, error) {
	if override != "" {
		if util.CheckDirExists(filepath.Join(override, "userdata")) {
			return override, nil
		}
		return "", oops.With("path", override).
			Wrapf(ErrSteamNotFound, "no userdata directory under %s", override)
	}
	for _, root := range candidateRoots(util.UserHome()) {
		if util.CheckDirExists(filepath.Join(root, "userdata")) {
			log.WithField("root", root).Debug("Found Steam installation")
			return root, nil
		}
	}
	return "", ErrSteamNotFound
}

// DefaultConfigPath returns where an account's CS2 config directory
// belongs under a Steam root, whether or not it exists yet.
func DefaultConfigPath(root, accountID string) string {
	return filepath.Join(root, "userdata", accountID, cs2AppID, "local", "cfg")
}

// ScanAccounts enumerates the userdata directories of a Steam root.
// Accounts with a CS2 config sort first, then by id.
func ScanAccounts(root string) ([]Account, error) {
	userdata := filepath.Join(root, "userdata")
	entries, err := os.ReadDir(userdata)
	if err != nil {
		return nil, oops.With("path", userdata).Wrapf(err, "reading userdata directory")
	}

	var accounts []Account
	for _, entry := range entries {
		if !entry.IsDir() || !isNumeric(entry.Name()) {
			continue
		}
		accounts = append(accounts, scanAccount(filepath.Join(userdata, entry.Name()), entry.Name()))
	}

	sort.Slice(accounts, func(i, j int) bool {
		if accounts[i].HasConfig() != accounts[j].HasConfig() {
			return accounts[i].HasConfig()
		}
		return accounts[i].ID < accounts[j].ID
	})

	log.WithFields(logrus.Fields{
		"root":     root,
		"accounts": len(accounts),
	}).Debug("Scanned Steam accounts")
	return accounts, nil
}

func scanAccount(accountPath, id string) Account {
	account := Account{
		ID:          id,
		PersonaName: personaName(filepath.Join(accountPath, "config", "localconfig.vdf")),
	}

	cfgPath := filepath.Join(accountPath, cs2AppID, "local", "cfg")
	if !util.CheckDirExists(cfgPath) {
		return account
	}
	account.ConfigPath = cfgPath

	entries, err := os.ReadDir(cfgPath)
	if err != nil {
		log.WithError(err).WithField("path", cfgPath).Warn("Cannot list config files")
		return account
	}
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasSuffix(name, ".cfg") || strings.HasSuffix(name, ".txt") {
			account.ConfigFiles = append(account.ConfigFiles, name)
		}
	}
	sort.Strings(account.ConfigFiles)
	return account
}

// personaName pulls the PersonaName value out of a localconfig.vdf. The
// VDF is line oriented; a full parser is not needed for one quoted key.
func personaName(vdfPath string) string {
	content, err := os.ReadFile(vdfPath)
	if err != nil {
		return ""
	}
	for _, line := range strings.Split(string(content), "\n") {
		if !strings.Contains(line, `"PersonaName"`) {
			continue
		}
		fields := strings.SplitN(line, `"PersonaName"`, 2)
		value := strings.TrimSpace(fields[1])
		value = strings.Trim(value, `"`)
		if value != "" {
			return value
		}
	}
	return ""
}

func isNumeric(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
