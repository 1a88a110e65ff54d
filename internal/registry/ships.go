package registry

import (
	"fmt"
	"strings"
)

// Ship is one entry of the static ship database. The homeport tag is the
// fallback region used when no location keyword matches a status entry.
// Flight is only set for destroyers (Arleigh Burke production flights);
// it stays empty for capital ships.
type Ship struct {
	Hull     string
	Name     string
	Class    string
	Type     string
	Flight   string
	Homeport string
}

// Ships lists every tracked hull in scan (and render) order. A slice is
// used instead of a map so the scrape order is stable across runs.
var Ships = []Ship{
	// Aircraft Carriers (CVN)
	{Hull: "CVN68", Name: "USS Nimitz", Class: "Nimitz", Type: "CVN", Homeport: "PACIFIC"},
	{Hull: "CVN69", Name: "USS Dwight D. Eisenhower", Class: "Nimitz", Type: "CVN", Homeport: "ATLANTIC"},
	{Hull: "CVN70", Name: "USS Carl Vinson", Class: "Nimitz", Type: "CVN", Homeport: "PACIFIC"},
	{Hull: "CVN71", Name: "USS Theodore Roosevelt", Class: "Nimitz", Type: "CVN", Homeport: "PACIFIC"},
	{Hull: "CVN72", Name: "USS Abraham Lincoln", Class: "Nimitz", Type: "CVN", Homeport: "PACIFIC"},
	{Hull: "CVN73", Name: "USS George Washington", Class: "Nimitz", Type: "CVN", Homeport: "WESTPAC"},
	{Hull: "CVN74", Name: "USS John C. Stennis", Class: "Nimitz", Type: "CVN", Homeport: "ATLANTIC"},
	{Hull: "CVN75", Name: "USS Harry S. Truman", Class: "Nimitz", Type: "CVN", Homeport: "ATLANTIC"},
	{Hull: "CVN76", Name: "USS Ronald Reagan", Class: "Nimitz", Type: "CVN", Homeport: "PACIFIC"},
	{Hull: "CVN77", Name: "USS George H.W. Bush", Class: "Nimitz", Type: "CVN", Homeport: "ATLANTIC"},
	{Hull: "CVN78", Name: "USS Gerald R. Ford", Class: "Ford", Type: "CVN", Homeport: "ATLANTIC"},
	// Amphibious Assault Ships (LHA/LHD)
	{Hull: "LHD1", Name: "USS Wasp", Class: "Wasp", Type: "LHD", Homeport: "ATLANTIC"},
	{Hull: "LHD2", Name: "USS Essex", Class: "Wasp", Type: "LHD", Homeport: "PACIFIC"},
	{Hull: "LHD3", Name: "USS Kearsarge", Class: "Wasp", Type: "LHD", Homeport: "ATLANTIC"},
	{Hull: "LHD4", Name: "USS Boxer", Class: "Wasp", Type: "LHD", Homeport: "PACIFIC"},
	{Hull: "LHD5", Name: "USS Bataan", Class: "Wasp", Type: "LHD", Homeport: "ATLANTIC"},
	{Hull: "LHD7", Name: "USS Iwo Jima", Class: "Wasp", Type: "LHD", Homeport: "ATLANTIC"},
	{Hull: "LHD8", Name: "USS Makin Island", Class: "Wasp", Type: "LHD", Homeport: "PACIFIC"},
	{Hull: "LHA6", Name: "USS America", Class: "America", Type: "LHA", Homeport: "PACIFIC"},
	{Hull: "LHA7", Name: "USS Tripoli", Class: "America", Type: "LHA", Homeport: "WESTPAC"},
}

// Destroyers lists every tracked guided missile destroyer in scan order:
// the Arleigh Burke flights in hull-number order, then the Zumwalt class.
// The source site serves their history pages under the same naming scheme
// as the capital ships.
var Destroyers = []Ship{
	// Arleigh Burke Flight I
	{Hull: "DDG51", Name: "USS Arleigh Burke", Class: "Arleigh Burke", Type: "DDG", Flight: "I", Homeport: "ATLANTIC"},
	{Hull: "DDG52", Name: "USS Barry", Class: "Arleigh Burke", Type: "DDG", Flight: "I", Homeport: "PACIFIC"},
	{Hull: "DDG53", Name: "USS John Paul Jones", Class: "Arleigh Burke", Type: "DDG", Flight: "I", Homeport: "PACIFIC"},
	{Hull: "DDG54", Name: "USS Curtis Wilbur", Class: "Arleigh Burke", Type: "DDG", Flight: "I", Homeport: "WESTPAC"},
	{Hull: "DDG55", Name: "USS Stout", Class: "Arleigh Burke", Type: "DDG", Flight: "I", Homeport: "ATLANTIC"},
	{Hull: "DDG56", Name: "USS John S. McCain", Class: "Arleigh Burke", Type: "DDG", Flight: "I", Homeport: "WESTPAC"},
	{Hull: "DDG57", Name: "USS Mitscher", Class: "Arleigh Burke", Type: "DDG", Flight: "I", Homeport: "ATLANTIC"},
	{Hull: "DDG58", Name: "USS Laboon", Class: "Arleigh Burke", Type: "DDG", Flight: "I", Homeport: "ATLANTIC"},
	{Hull: "DDG59", Name: "USS Russell", Class: "Arleigh Burke", Type: "DDG", Flight: "I", Homeport: "PACIFIC"},
	{Hull: "DDG60", Name: "USS Paul Hamilton", Class: "Arleigh Burke", Type: "DDG", Flight: "I", Homeport: "PACIFIC"},
	{Hull: "DDG61", Name: "USS Ramage", Class: "Arleigh Burke", Type: "DDG", Flight: "I", Homeport: "ATLANTIC"},
	{Hull: "DDG62", Name: "USS Fitzgerald", Class: "Arleigh Burke", Type: "DDG", Flight: "I", Homeport: "PACIFIC"},
	{Hull: "DDG63", Name: "USS Stethem", Class: "Arleigh Burke", Type: "DDG", Flight: "I", Homeport: "PACIFIC"},
	{Hull: "DDG64", Name: "USS Carney", Class: "Arleigh Burke", Type: "DDG", Flight: "I", Homeport: "ATLANTIC"},
	{Hull: "DDG65", Name: "USS Benfold", Class: "Arleigh Burke", Type: "DDG", Flight: "I", Homeport: "WESTPAC"},
	{Hull: "DDG66", Name: "USS Gonzalez", Class: "Arleigh Burke", Type: "DDG", Flight: "I", Homeport: "ATLANTIC"},
	{Hull: "DDG67", Name: "USS Cole", Class: "Arleigh Burke", Type: "DDG", Flight: "I", Homeport: "ATLANTIC"},
	{Hull: "DDG68", Name: "USS The Sullivans", Class: "Arleigh Burke", Type: "DDG", Flight: "I", Homeport: "ATLANTIC"},
	{Hull: "DDG69", Name: "USS Milius", Class: "Arleigh Burke", Type: "DDG", Flight: "I", Homeport: "WESTPAC"},
	{Hull: "DDG70", Name: "USS Hopper", Class: "Arleigh Burke", Type: "DDG", Flight: "I", Homeport: "PACIFIC"},
	{Hull: "DDG71", Name: "USS Ross", Class: "Arleigh Burke", Type: "DDG", Flight: "I", Homeport: "ATLANTIC"},
	// Arleigh Burke Flight II
	{Hull: "DDG72", Name: "USS Mahan", Class: "Arleigh Burke", Type: "DDG", Flight: "II", Homeport: "ATLANTIC"},
	{Hull: "DDG73", Name: "USS Decatur", Class: "Arleigh Burke", Type: "DDG", Flight: "II", Homeport: "PACIFIC"},
	{Hull: "DDG74", Name: "USS McFaul", Class: "Arleigh Burke", Type: "DDG", Flight: "II", Homeport: "ATLANTIC"},
	{Hull: "DDG75", Name: "USS Donald Cook", Class: "Arleigh Burke", Type: "DDG", Flight: "II", Homeport: "ATLANTIC"},
	{Hull: "DDG76", Name: "USS Higgins", Class: "Arleigh Burke", Type: "DDG", Flight: "II", Homeport: "PACIFIC"},
	{Hull: "DDG77", Name: "USS O'Kane", Class: "Arleigh Burke", Type: "DDG", Flight: "II", Homeport: "PACIFIC"},
	{Hull: "DDG78", Name: "USS Porter", Class: "Arleigh Burke", Type: "DDG", Flight: "II", Homeport: "ATLANTIC"},
	// Arleigh Burke Flight IIA
	{Hull: "DDG79", Name: "USS Oscar Austin", Class: "Arleigh Burke", Type: "DDG", Flight: "IIA", Homeport: "ATLANTIC"},
	{Hull: "DDG80", Name: "USS Roosevelt", Class: "Arleigh Burke", Type: "DDG", Flight: "IIA", Homeport: "ATLANTIC"},
	{Hull: "DDG81", Name: "USS Winston S. Churchill", Class: "Arleigh Burke", Type: "DDG", Flight: "IIA", Homeport: "ATLANTIC"},
	{Hull: "DDG82", Name: "USS Lassen", Class: "Arleigh Burke", Type: "DDG", Flight: "IIA", Homeport: "ATLANTIC"},
	{Hull: "DDG83", Name: "USS Howard", Class: "Arleigh Burke", Type: "DDG", Flight: "IIA", Homeport: "PACIFIC"},
	{Hull: "DDG84", Name: "USS Bulkeley", Class: "Arleigh Burke", Type: "DDG", Flight: "IIA", Homeport: "ATLANTIC"},
	{Hull: "DDG85", Name: "USS McCampbell", Class: "Arleigh Burke", Type: "DDG", Flight: "IIA", Homeport: "WESTPAC"},
	{Hull: "DDG86", Name: "USS Shoup", Class: "Arleigh Burke", Type: "DDG", Flight: "IIA", Homeport: "PACIFIC"},
	{Hull: "DDG87", Name: "USS Mason", Class: "Arleigh Burke", Type: "DDG", Flight: "IIA", Homeport: "ATLANTIC"},
	{Hull: "DDG88", Name: "USS Preble", Class: "Arleigh Burke", Type: "DDG", Flight: "IIA", Homeport: "PACIFIC"},
	{Hull: "DDG89", Name: "USS Mustin", Class: "Arleigh Burke", Type: "DDG", Flight: "IIA", Homeport: "PACIFIC"},
	{Hull: "DDG90", Name: "USS Chafee", Class: "Arleigh Burke", Type: "DDG", Flight: "IIA", Homeport: "PACIFIC"},
	{Hull: "DDG91", Name: "USS Pinckney", Class: "Arleigh Burke", Type: "DDG", Flight: "IIA", Homeport: "PACIFIC"},
	{Hull: "DDG92", Name: "USS Momsen", Class: "Arleigh Burke", Type: "DDG", Flight: "IIA", Homeport: "PACIFIC"},
	{Hull: "DDG93", Name: "USS Chung-Hoon", Class: "Arleigh Burke", Type: "DDG", Flight: "IIA", Homeport: "PACIFIC"},
	{Hull: "DDG94", Name: "USS Nitze", Class: "Arleigh Burke", Type: "DDG", Flight: "IIA", Homeport: "ATLANTIC"},
	{Hull: "DDG95", Name: "USS James E. Williams", Class: "Arleigh Burke", Type: "DDG", Flight: "IIA", Homeport: "ATLANTIC"},
	{Hull: "DDG96", Name: "USS Bainbridge", Class: "Arleigh Burke", Type: "DDG", Flight: "IIA", Homeport: "ATLANTIC"},
	{Hull: "DDG97", Name: "USS Halsey", Class: "Arleigh Burke", Type: "DDG", Flight: "IIA", Homeport: "PACIFIC"},
	{Hull: "DDG98", Name: "USS Forrest Sherman", Class: "Arleigh Burke", Type: "DDG", Flight: "IIA", Homeport: "ATLANTIC"},
	{Hull: "DDG99", Name: "USS Farragut", Class: "Arleigh Burke", Type: "DDG", Flight: "IIA", Homeport: "ATLANTIC"},
	{Hull: "DDG100", Name: "USS Kidd", Class: "Arleigh Burke", Type: "DDG", Flight: "IIA", Homeport: "PACIFIC"},
	{Hull: "DDG101", Name: "USS Gridley", Class: "Arleigh Burke", Type: "DDG", Flight: "IIA", Homeport: "PACIFIC"},
	{Hull: "DDG102", Name: "USS Sampson", Class: "Arleigh Burke", Type: "DDG", Flight: "IIA", Homeport: "PACIFIC"},
	{Hull: "DDG103", Name: "USS Truxtun", Class: "Arleigh Burke", Type: "DDG", Flight: "IIA", Homeport: "ATLANTIC"},
	{Hull: "DDG104", Name: "USS Sterett", Class: "Arleigh Burke", Type: "DDG", Flight: "IIA", Homeport: "PACIFIC"},
	{Hull: "DDG105", Name: "USS Dewey", Class: "Arleigh Burke", Type: "DDG", Flight: "IIA", Homeport: "PACIFIC"},
	{Hull: "DDG106", Name: "USS Stockdale", Class: "Arleigh Burke", Type: "DDG", Flight: "IIA", Homeport: "PACIFIC"},
	{Hull: "DDG107", Name: "USS Gravely", Class: "Arleigh Burke", Type: "DDG", Flight: "IIA", Homeport: "ATLANTIC"},
	{Hull: "DDG108", Name: "USS Wayne E. Meyer", Class: "Arleigh Burke", Type: "DDG", Flight: "IIA", Homeport: "PACIFIC"},
	{Hull: "DDG109", Name: "USS Jason Dunham", Class: "Arleigh Burke", Type: "DDG", Flight: "IIA", Homeport: "ATLANTIC"},
	{Hull: "DDG110", Name: "USS William P. Lawrence", Class: "Arleigh Burke", Type: "DDG", Flight: "IIA", Homeport: "PACIFIC"},
	{Hull: "DDG111", Name: "USS Spruance", Class: "Arleigh Burke", Type: "DDG", Flight: "IIA", Homeport: "PACIFIC"},
	{Hull: "DDG112", Name: "USS Michael Murphy", Class: "Arleigh Burke", Type: "DDG", Flight: "IIA", Homeport: "PACIFIC"},
	{Hull: "DDG113", Name: "USS John Finn", Class: "Arleigh Burke", Type: "DDG", Flight: "IIA", Homeport: "PACIFIC"},
	{Hull: "DDG114", Name: "USS Ralph Johnson", Class: "Arleigh Burke", Type: "DDG", Flight: "IIA", Homeport: "PACIFIC"},
	{Hull: "DDG115", Name: "USS Rafael Peralta", Class: "Arleigh Burke", Type: "DDG", Flight: "IIA", Homeport: "PACIFIC"},
	{Hull: "DDG116", Name: "USS Thomas Hudner", Class: "Arleigh Burke", Type: "DDG", Flight: "IIA", Homeport: "ATLANTIC"},
	{Hull: "DDG117", Name: "USS Paul Ignatius", Class: "Arleigh Burke", Type: "DDG", Flight: "IIA", Homeport: "ATLANTIC"},
	{Hull: "DDG118", Name: "USS Daniel Inouye", Class: "Arleigh Burke", Type: "DDG", Flight: "IIA", Homeport: "PACIFIC"},
	{Hull: "DDG119", Name: "USS Delbert D. Black", Class: "Arleigh Burke", Type: "DDG", Flight: "IIA", Homeport: "ATLANTIC"},
	{Hull: "DDG120", Name: "USS Carl M. Levin", Class: "Arleigh Burke", Type: "DDG", Flight: "IIA", Homeport: "PACIFIC"},
	{Hull: "DDG121", Name: "USS Frank E. Petersen Jr.", Class: "Arleigh Burke", Type: "DDG", Flight: "IIA", Homeport: "PACIFIC"},
	// Arleigh Burke Flight III
	{Hull: "DDG122", Name: "USS John Basilone", Class: "Arleigh Burke", Type: "DDG", Flight: "III", Homeport: "ATLANTIC"},
	{Hull: "DDG123", Name: "USS Lenah Sutcliffe Higbee", Class: "Arleigh Burke", Type: "DDG", Flight: "III", Homeport: "PACIFIC"},
	{Hull: "DDG125", Name: "USS Jack H. Lucas", Class: "Arleigh Burke", Type: "DDG", Flight: "III", Homeport: "ATLANTIC"},
	// Zumwalt class
	{Hull: "DDG1000", Name: "USS Zumwalt", Class: "Zumwalt", Type: "DDG", Flight: "N/A", Homeport: "PACIFIC"},
	{Hull: "DDG1001", Name: "USS Michael Monsoor", Class: "Zumwalt", Type: "DDG", Flight: "N/A", Homeport: "PACIFIC"},
	{Hull: "DDG1002", Name: "USS Lyndon B. Johnson", Class: "Zumwalt", Type: "DDG", Flight: "N/A", Homeport: "PACIFIC"},
}

// TrackedShips returns the full scan list: capital ships first, then the
// destroyer fleet. One run covers both trackers.
func TrackedShips() []Ship {
	all := make([]Ship, 0, len(Ships)+len(Destroyers))
	all = append(all, Ships...)
	all = append(all, Destroyers...)
	return all
}

// HistoryURL derives the source-site history page for a hull, e.g.
// "http://uscarriers.net/cvn68history.htm".
func HistoryURL(baseURL, hull string) string {
	return fmt.Sprintf("%s/%shistory.htm", strings.TrimRight(baseURL, "/"), strings.ToLower(hull))
}
