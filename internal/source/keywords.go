package source

import "strings"

// conflictKeywords filters upstream items down to crisis-related ones. The
// list mixes general conflict vocabulary, actor and region names, and common
// non-English terms so multilingual feeds still match.
var conflictKeywords = []string{
	// English, general
	"war", "conflict", "attack", "explosion", "bomb", "missile", "rocket",
	"terrorism", "terror", "protest", "demonstration", "riot", "unrest",
	"military", "soldier", "weapons", "armed", "combat", "strike",
	"killed", "casualties", "injured", "violence", "clash", "fighting",
	"airstrike", "drone", "shelling", "artillery", "siege", "invasion",
	"coup", "rebel", "insurgent", "militia", "ceasefire", "offensive",
	"hostage", "kidnap", "assassination", "shooting", "gunfire",
	"sanctions", "nuclear", "chemical", "biological", "troops",
	"navy", "army", "air force", "border", "frontline", "occupation",

	// Groups and leaders
	"hamas", "hezbollah", "isis", "taliban", "al-qaeda", "wagner",
	"putin", "zelenskyy", "netanyahu", "khamenei", "erdogan", "assad",
	"idf", "irgc", "quds", "houthi", "pyd", "ypg", "sdf",

	// Turkey and Kurdistan
	"pkk", "kurdish", "kurdistan", "ankara", "istanbul", "diyarbakir",
	"afrin", "kobani", "rojava", "hdp", "akp", "mhp", "chp",
	"türkiye", "turkish", "lira crisis", "earthquake turkey",
	"gaziantep", "hatay", "mardin", "sirnak", "hakkari", "van",

	// Iran
	"tehran", "isfahan", "natanz", "raisi", "basij",
	"mahsa", "hijab protest", "revolutionary guard", "pasdaran",
	"shiraz", "tabriz", "mashhad", "qom", "persian gulf",

	// Israel, Gaza, Palestine
	"gaza", "rafah", "khan younis", "tel aviv", "west bank", "jenin",
	"nablus", "ramallah", "settler", "intifada", "iron dome",
	"mossad", "shin bet", "fatah", "islamic jihad",

	// Ukraine and Russia
	"kyiv", "kharkiv", "odesa", "donetsk", "luhansk", "crimea",
	"mariupol", "bakhmut", "avdiivka", "zaporizhzhia", "kursk",
	"belgorod", "moscow", "azov", "dnipro", "kherson", "mykolaiv",
	"sumy", "chernihiv", "counter-offensive", "drones",

	// Syria
	"damascus", "aleppo", "idlib", "homs", "raqqa", "deir ez-zor",
	"al-nusra", "hayat tahrir", "white helmets", "barrel bomb",

	// Yemen
	"sanaa", "aden", "marib", "hodeidah", "saudi coalition",

	// German
	"krieg", "angriff", "bombe", "rakete",
	"terrorismus", "gewalt", "konflikt",
	"militär", "soldat", "waffen", "gefecht", "opfer",

	// Spanish
	"guerra", "ataque", "explosión", "bomba", "misil",
	"terrorismo", "protesta", "violencia", "conflicto", "militar",

	// French
	"guerre", "attaque", "bombe", "missile",
	"terrorisme", "manifestation", "conflit", "militaire",

	// Turkish
	"savaş", "çatışma", "patlama", "şehit", "terör",

	// Arabic transliterated
	"harb", "qital", "jihad", "shahid", "mujahid",
}

// isConflictRelated reports whether text mentions any conflict keyword.
func isConflictRelated(text string) bool {
	lower := strings.ToLower(text)
	for _, kw := range conflictKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}
