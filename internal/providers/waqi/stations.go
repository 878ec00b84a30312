package waqi

// StationCoordinates maps canonical station keys to representative
// coordinates used for the WAQI geo feed lookup. Keys are the normalized
// form the annotator's name matcher reconciles boundary labels against.
var StationCoordinates = map[string][2]float64{
	"connaught place":   {28.6315, 77.2167},
	"chanakyapuri":      {28.5921, 77.1855},
	"karol bagh":        {28.6519, 77.1909},
	"paharganj":         {28.6457, 77.2128},
	"daryaganj":         {28.6425, 77.2430},
	"kashmere gate":     {28.6675, 77.2285},
	"civil lines":       {28.6814, 77.2226},
	"model town":        {28.7158, 77.1910},
	"rohini":            {28.7495, 77.0565},
	"pitampura":         {28.7032, 77.1318},
	"punjabi bagh":      {28.6743, 77.1313},
	"rajouri garden":    {28.6425, 77.1220},
	"janakpuri":         {28.6219, 77.0878},
	"dwarka":            {28.5921, 77.0460},
	"vasant kunj":       {28.5246, 77.1557},
	"vasant vihar":      {28.5580, 77.1594},
	"saket":             {28.5245, 77.2066},
	"hauz khas":         {28.5494, 77.2001},
	"greater kailash":   {28.5483, 77.2380},
	"lajpat nagar":      {28.5677, 77.2433},
	"nizamuddin":        {28.5933, 77.2507},
	"okhla":             {28.5355, 77.2750},
	"kalkaji":           {28.5497, 77.2591},
	"mayur vihar":       {28.6091, 77.2930},
	"preet vihar":       {28.6419, 77.2950},
	"shahdara":          {28.6733, 77.2892},
	"seelampur":         {28.6843, 77.2671},
	"narela":            {28.8527, 77.0927},
	"najafgarh":         {28.6092, 76.9798},
	"mehrauli":          {28.5166, 77.1786},
	"badarpur":          {28.4931, 77.3015},
	"sarita vihar":      {28.5312, 77.2888},
	"tilak nagar":       {28.6430, 77.0967},
	"uttam nagar":       {28.6196, 77.0592},
	"shalimar bagh":     {28.7165, 77.1649},
	"ashok vihar":       {28.6992, 77.1848},
	"patel nagar":       {28.6550, 77.1680},
	"sadar bazar":       {28.6613, 77.2147},
	"chandni chowk":     {28.6562, 77.2301},
	"jama masjid":       {28.6507, 77.2334},
	"tughlakabad":       {28.5146, 77.2597},
	"defence colony":    {28.5728, 77.2317},
	"lodhi colony":      {28.5842, 77.2229},
	"parliament street": {28.6203, 77.2130},
}

// StationNames returns the canonical keys in no particular order.
func StationNames() []string {
	names := make([]string, 0, len(StationCoordinates))
	for name := range StationCoordinates {
		names = append(names, name)
	}
	return names
}
