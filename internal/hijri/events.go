package hijri

// events maps {month, day} to a named observance. Only fixed-date
// observances of the Hijri calendar are listed; anything tied to weekday
// or sighting announcements is out of scope.
var events = map[[2]int]string{
	{1, 1}:   "Islamic New Year",
	{1, 10}:  "Day of Ashura",
	{3, 12}:  "Mawlid an-Nabi",
	{7, 27}:  "Isra and Mi'raj",
	{8, 15}:  "Mid-Sha'ban",
	{9, 1}:   "First day of Ramadan",
	{9, 27}:  "Laylat al-Qadr",
	{10, 1}:  "Eid al-Fitr",
	{12, 9}:  "Day of Arafah",
	{12, 10}: "Eid al-Adha",
}

// EventFor returns the named observance falling on the given Hijri day and
// month, or ok=false when the day carries none.
func EventFor(day, month int) (string, bool) {
	name, ok := events[[2]int{month, day}]
	return name, ok
}

// Event returns the observance for the date, if any.
func (d Date) Event() (string, bool) {
	return EventFor(d.Day, d.Month)
}
