// Package catalog defines the fixed set of applications winprep can install.
//
// The catalog is a static table mapping a short key to a winget package
// identifier and a display name. It is defined at process start and never
// mutated; selection and plan building operate on copies of its entries.
package catalog

// Entry describes one installable application.
type Entry struct {
	// Key uniquely identifies the entry within the catalog.
	Key string `json:"key" yaml:"key"`

	// PackageID is the exact winget package identifier.
	PackageID string `json:"packageId" yaml:"packageId"`

	// DisplayName is the human-readable application name.
	DisplayName string `json:"displayName" yaml:"displayName"`
}

// entries is the catalog in presentation and execution order.
var entries = []Entry{
	{Key: "chrome", PackageID: "Google.Chrome", DisplayName: "Google Chrome"},
	{Key: "firefox", PackageID: "Mozilla.Firefox", DisplayName: "Mozilla Firefox"},
	{Key: "7zip", PackageID: "7zip.7zip", DisplayName: "7-Zip"},
	{Key: "notepadpp", PackageID: "Notepad++.Notepad++", DisplayName: "Notepad++"},
	{Key: "vlc", PackageID: "VideoLAN.VLC", DisplayName: "VLC Media Player"},
	{Key: "spotify", PackageID: "Spotify.Spotify", DisplayName: "Spotify"},
	{Key: "discord", PackageID: "Discord.Discord", DisplayName: "Discord"},
	{Key: "steam", PackageID: "Valve.Steam", DisplayName: "Steam"},
	{Key: "epicgames", PackageID: "EpicGames.EpicGamesLauncher", DisplayName: "Epic Games Launcher"},
	{Key: "libreoffice", PackageID: "TheDocumentFoundation.LibreOffice", DisplayName: "LibreOffice"},
	{Key: "vscode", PackageID: "Microsoft.VisualStudioCode", DisplayName: "Visual Studio Code"},
	{Key: "powertoys", PackageID: "Microsoft.PowerToys", DisplayName: "Microsoft PowerToys"},
}

// Entries returns the full catalog in fixed order.
func Entries() []Entry {
	out := make([]Entry, len(entries))
	copy(out, entries)
	return out
}

// Lookup returns the entry for key, if present.
func Lookup(key string) (Entry, bool) {
	for _, e := range entries {
		if e.Key == key {
			return e, true
		}
	}
	return Entry{}, false
}

// Select resolves a set of keys to catalog entries in catalog order.
// Unknown and duplicate keys are dropped, so the result is always a
// well-formed subset regardless of how the selection was produced.
func Select(keys []string) []Entry {
	wanted := make(map[string]bool, len(keys))
	for _, k := range keys {
		wanted[k] = true
	}

	var out []Entry
	for _, e := range entries {
		if wanted[e.Key] {
			out = append(out, e)
		}
	}
	return out
}
