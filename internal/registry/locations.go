package registry

// Coordinates pins a location tag to a point on the map and a command
// region. Values for seas and oceans are representative centers, not
// precise positions.
type Coordinates struct {
	Lat    float64
	Lon    float64
	Region string
}

// LocationCoords maps every location tag produced by categorization to
// its coordinates.
var LocationCoords = map[string]Coordinates{
	// US ports / shipyards
	"Norfolk / Portsmouth": {36.9473, -76.3134, "CONUS"},
	"San Diego":            {32.7157, -117.1611, "CONUS"},
	"Bremerton / Kitsap":   {47.5673, -122.6329, "CONUS"},
	"Newport News":         {36.9788, -76.4280, "CONUS"},
	"Pearl Harbor":         {21.3545, -157.9698, "PACIFIC"},
	"Mayport":              {30.3918, -81.4285, "CONUS"},
	"Everett":              {47.9790, -122.2021, "CONUS"},
	"Pascagoula":           {30.3658, -88.5561, "CONUS"},
	"Bath":                 {43.9106, -69.8206, "CONUS"},
	"Rota":                 {36.6175, -6.3497, "EUCOM"},

	// Forward deployed / foreign ports
	"Yokosuka":    {35.2831, 139.6703, "WESTPAC"},
	"Sasebo":      {33.1595, 129.7235, "WESTPAC"},
	"Guam":        {13.4443, 144.7937, "WESTPAC"},
	"Singapore":   {1.2655, 103.8200, "INDOPAC"},
	"Bahrain":     {26.2235, 50.5876, "CENTCOM"},
	"Dubai":       {25.2582, 55.3047, "CENTCOM"},
	"Busan":       {35.1028, 129.0403, "WESTPAC"},
	"Philippines": {14.5995, 120.9842, "WESTPAC"},
	"Malaysia":    {3.1390, 101.6869, "INDOPAC"},
	"Okinawa":     {26.3344, 127.8056, "WESTPAC"},
	"Ponce":       {17.9800, -66.6141, "SOUTHCOM"},

	// Strategic regions / seas
	"South China Sea":           {12.0000, 114.0000, "WESTPAC"},
	"Western Pacific (WESTPAC)": {15.0000, 135.0000, "WESTPAC"},
	"Philippine Sea":            {20.0000, 130.0000, "WESTPAC"},
	"East China Sea":            {28.0000, 125.0000, "WESTPAC"},
	"Red Sea":                   {20.0000, 38.0000, "CENTCOM"},
	"Persian Gulf":              {27.0000, 51.0000, "CENTCOM"},
	"Gulf of Oman":              {24.5000, 58.5000, "CENTCOM"},
	"Gulf of Aden":              {12.5000, 47.0000, "CENTCOM"},
	"Arabian Sea":               {15.0000, 65.0000, "CENTCOM"},
	"Mediterranean":             {35.0000, 18.0000, "EUCOM"},
	"Caribbean Sea":             {15.5000, -73.0000, "SOUTHCOM"},
	"North Sea":                 {56.0000, 3.0000, "EUCOM"},
	"Norwegian Sea":             {68.0000, 5.0000, "EUCOM"},
	"Strait of Gibraltar":       {35.9500, -5.6000, "EUCOM"},
	"Suez Canal":                {30.6000, 32.3300, "CENTCOM"},
	"Bab el-Mandeb":             {12.5833, 43.3333, "CENTCOM"},
	"Sea of Japan":              {40.0000, 135.0000, "WESTPAC"},
	"Baltic Sea":                {55.0000, 15.0000, "EUCOM"},
	"Black Sea":                 {43.0000, 35.0000, "EUCOM"},

	// Oceans, used as homeport fallbacks
	"Atlantic Ocean": {32.0000, -65.0000, "ATLANTIC"},
	"Pacific Ocean":  {25.0000, -140.0000, "PACIFIC"},
	"Indian Ocean":   {-5.0000, 75.0000, "INDOPAC"},
}

// LocationKeywords is the ordered keyword table used to categorize a
// status entry. Order matters two ways: the rightmost keyword occurrence
// in the text wins (ships report movements chronologically), and on a
// position tie the earlier, more specific table entry wins. Ports come
// first, broad oceans last.
type LocationKeywords struct {
	Location string
	Keywords []string
}

var LocationKeywordTable = []LocationKeywords{
	// Most specific locations first (ports, bases)
	{"Ponce", []string{"ponce", "port of ponce"}},
	{"Rota", []string{"rota", "naval station rota"}},
	{"Bath", []string{"bath iron works", "bath maine", "biw"}},
	{"Okinawa", []string{"okinawa", "white beach", "east coast of okinawa"}},
	{"Sasebo", []string{"sasebo", "juliet basin wharf"}},
	{"Yokosuka", []string{"yokosuka"}},
	{"Norfolk / Portsmouth", []string{"norfolk", "portsmouth", "virginia beach", "naval station norfolk", "pier 11", "pier 12", "pier 14", "bae systems shipyard", "nassco"}},
	{"San Diego", []string{"san diego", "north island", "camp pendleton", "naval base san diego"}},
	{"Bremerton / Kitsap", []string{"bremerton", "kitsap", "psns", "puget sound"}},
	{"Newport News", []string{"newport news", "huntington ingalls", "outfitting berth"}},
	{"Pearl Harbor", []string{"pearl harbor"}},
	{"Mayport", []string{"mayport", "naval station mayport"}},
	{"Everett", []string{"everett"}},
	{"Pascagoula", []string{"pascagoula", "ingalls"}},
	{"Guam", []string{"guam", "apra"}},
	{"Singapore", []string{"singapore", "changi"}},
	{"Bahrain", []string{"bahrain", "manama"}},
	{"Dubai", []string{"dubai", "jebel ali"}},
	{"Busan", []string{"busan"}},
	{"Philippines", []string{"philippines", "manila", "subic"}},
	{"Malaysia", []string{"malaysia", "klang"}},

	// Regions / seas
	{"Caribbean Sea", []string{"caribbean", "venezuela", "orchila", "st. croix", "trinidad", "tobago", "puerto rico", "virgin islands", "absolute resolve"}},
	{"South China Sea", []string{"south china sea", "spratly islands", "spratly", "luzon"}},
	{"Western Pacific (WESTPAC)", []string{"san bernardino strait", "western pacific", "westpac"}},
	{"Philippine Sea", []string{"philippine sea"}},
	{"East China Sea", []string{"east china sea"}},
	{"Red Sea", []string{"red sea"}},
	{"Persian Gulf", []string{"persian gulf", "arabian gulf"}},
	{"Gulf of Oman", []string{"gulf of oman"}},
	{"Gulf of Aden", []string{"gulf of aden"}},
	{"Arabian Sea", []string{"arabian sea"}},
	{"Mediterranean", []string{"mediterranean", "med sea"}},
	{"North Sea", []string{"north sea"}},
	{"Norwegian Sea", []string{"norwegian sea"}},
	{"Strait of Gibraltar", []string{"gibraltar"}},
	{"Suez Canal", []string{"suez"}},
	{"Bab el-Mandeb", []string{"bab el-mandeb"}},
	{"Sea of Japan", []string{"sea of japan"}},
	{"Baltic Sea", []string{"baltic"}},
	{"Black Sea", []string{"black sea"}},

	// Broad oceans (lowest priority)
	{"Atlantic Ocean", []string{"atlantic"}},
	{"Pacific Ocean", []string{"pacific"}},
	{"Indian Ocean", []string{"indian ocean"}},
}

// DeparturePattern maps a "departed <port>" phrase to the open-water
// location implied when nothing later in the entry says where the ship
// went.
type DeparturePattern struct {
	Phrase   string
	Location string
}

var DeparturePatterns = []DeparturePattern{
	{"departed san diego", "Pacific Ocean"},
	{"departed norfolk", "Atlantic Ocean"},
	{"departed pearl harbor", "Pacific Ocean"},
	{"departed mayport", "Atlantic Ocean"},
	{"departed bremerton", "Pacific Ocean"},
	{"departed everett", "Pacific Ocean"},
	{"departed yokosuka", "Western Pacific (WESTPAC)"},
	{"departed sasebo", "Western Pacific (WESTPAC)"},
	{"departed rota", "Mediterranean"},
}

// HomeportFallback returns the open-water location tag for a homeport
// when a status entry mentions no known location at all.
func HomeportFallback(homeport string) string {
	switch homeport {
	case "PACIFIC":
		return "Pacific Ocean"
	case "WESTPAC":
		return "Western Pacific (WESTPAC)"
	default:
		return "Atlantic Ocean"
	}
}
