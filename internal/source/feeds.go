package source

// rssFeed names one news feed. The name doubles as the event tag so the feed
// an event came from is visible downstream.
type rssFeed struct {
	name string
	url  string
}

// rssFeeds covers the major international wires plus region-focused outlets
// for the priority conflict areas.
var rssFeeds = []rssFeed{
	// Major international
	{"aljazeera", "https://www.aljazeera.com/xml/rss/all.xml"},
	{"bbc_world", "https://feeds.bbci.co.uk/news/world/rss.xml"},
	{"bbc_europe", "https://feeds.bbci.co.uk/news/world/europe/rss.xml"},
	{"bbc_middleeast", "https://feeds.bbci.co.uk/news/world/middle_east/rss.xml"},
	{"bbc_asia", "https://feeds.bbci.co.uk/news/world/asia/rss.xml"},
	{"bbc_africa", "https://feeds.bbci.co.uk/news/world/africa/rss.xml"},
	{"bbc_latinamerica", "https://feeds.bbci.co.uk/news/world/latin_america/rss.xml"},
	{"dw_english", "https://rss.dw.com/rdf/rss-en-all"},
	{"france24_english", "https://www.france24.com/en/rss"},
	{"guardian_world", "https://www.theguardian.com/world/rss"},
	{"npr_world", "https://feeds.npr.org/1004/rss.xml"},
	{"reuters_world", "https://www.reutersagency.com/feed/?best-topics=world-news&post_type=best"},

	// Turkey and Kurdistan
	{"dailysabah", "https://www.dailysabah.com/rss"},
	{"ahvalnews", "https://ahvalnews.com/rss.xml"},
	{"bianet", "https://bianet.org/english.rss"},
	{"kurdistan24", "https://www.kurdistan24.net/en/rss"},
	{"rudaw", "https://www.rudaw.net/english/rss"},

	// Middle East
	{"timesofisrael", "https://www.timesofisrael.com/feed/"},
	{"middleeasteye", "https://www.middleeasteye.net/rss"},
	{"almonitor", "https://www.al-monitor.com/rss"},
	{"memo", "https://www.middleeastmonitor.com/feed/"},
	{"arabnews", "https://www.arabnews.com/rss.xml"},
	{"jpost", "https://www.jpost.com/rss/rssfeedsfrontpage.aspx"},
	{"mag972", "https://www.972mag.com/feed/"},
	{"syriadirect", "https://syriadirect.org/feed/"},
	{"iranintl", "https://www.iranintl.com/en/rss"},

	// Russia and Ukraine
	{"kyivindependent", "https://kyivindependent.com/feed/"},
	{"tass_world", "https://tass.com/rss/v2.xml"},
	{"ukrinform", "https://www.ukrinform.net/rss/block-lastnews"},
	{"meduza", "https://meduza.io/rss/en/all"},
	{"moscowtimes", "https://www.themoscowtimes.com/rss/news"},

	// Asia
	{"japantimes", "https://www.japantimes.co.jp/feed/"},
	{"scmp", "https://www.scmp.com/rss/91/feed"},
	{"xinhua_world", "http://www.xinhuanet.com/english/rss/worldrss.xml"},

	// Other
	{"mercopress", "https://en.mercopress.com/rss"},
	{"africanews", "https://www.africanews.com/feed/"},
	{"hindustan_times", "https://www.hindustantimes.com/feeds/rss/world-news/rssfeed.xml"},
}
