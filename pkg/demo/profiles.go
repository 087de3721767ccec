// Package demo drives a profile widget from a settings screen.
//
// A [Controller] holds the state of every control (switches, a border
// width slider, color buttons) and maps each control change to exactly one
// group of widget calls. The terminal UI in internal/cli renders the
// controls and forwards key presses; the controller never draws anything
// itself.
package demo

// TestProfile is one entry of the demo data set.
type TestProfile struct {
	Name    string
	Image   string
	Channel string
}

// Profiles returns the demo data set in cycling order.
func Profiles() []TestProfile {
	return []TestProfile{
		{Name: "Monica Geller", Image: "monica", Channel: "linkedin"},
		{Name: "Chandler Bing", Image: "chandler", Channel: "facebook"},
		{Name: "Rachel Green", Image: "rachel", Channel: "instagram"},
		{Name: "Ross Geller", Image: "ross", Channel: "twitter"},
		{Name: "Phoebe Buffay", Image: "phoebe", Channel: "soundcloud"},
		{Name: "Joey Tribbiani", Image: "joey", Channel: "twitter"},
	}
}

// AssetNames returns every image name the data set refers to, without duplicates.
func AssetNames(profiles []TestProfile) []string {
	seen := map[string]bool{}
	var names []string
	for _, p := range profiles {
		for _, n := range []string{p.Image, p.Channel} {
			if !seen[n] {
				seen[n] = true
				names = append(names, n)
			}
		}
	}
	return names
}
