package domain

// FallbackEvents returns the static demonstration dataset used when the live
// pipeline yields nothing or too little. IDs are fixed so callers can tell
// fallback entries from live ones. Event dates are stamped at call time.
func FallbackEvents() []Event {
	now := clock.Now().UTC()
	mk := func(id, title, desc string, category Category, severity Severity, lon, lat float64, verified bool, tags ...string) Event {
		return Event{
			ID:          id,
			Title:       TruncateTitle(title),
			Description: TruncateDescription(desc),
			Category:    category,
			Severity:    severity,
			Coordinates: Coordinates{Lon: lon, Lat: lat},
			EventDate:   now,
			Verified:    verified,
			MediaURLs:   []string{},
			Tags:        tags,
		}
	}

	return []Event{
		mk("demo-1", "Iran protesters defy crackdown as videos show violent clashes",
			"Hundreds of protesters are believed to have been killed or injured, and many more detained.",
			CategoryProtest, SeverityCritical, 51.39, 35.69, true, "iran", "protest"),
		mk("demo-2", "US military strikes Islamic State group targets in Syria, officials say",
			"US President Donald Trump ordered the \"large-scale strikes\" on Saturday, US Central Command said.",
			CategoryAirRaid, SeverityHigh, 38.99, 34.80, true, "syria", "us-military", "isis"),
		mk("demo-3", "Thousands march and dozens arrested in Minneapolis protests against ICE",
			"Days after the death of Renee Good, protests continue in Minneapolis and cities across the country.",
			CategoryProtest, SeverityMedium, -93.27, 44.98, true, "usa", "protest", "ice"),
		mk("demo-4", "Last Kurdish forces leave Aleppo after ceasefire deal reached",
			"The deal was announced in the early hours of Sunday morning after a week of violent clashes.",
			CategoryCombat, SeverityMedium, 37.16, 36.20, true, "syria", "kurdish", "ceasefire"),
		mk("demo-5", "US seizes fifth oil tanker linked to Venezuela, officials say",
			"The ship was intercepted in international waters carrying crude oil.",
			CategoryNaval, SeverityLow, -66.58, 10.48, true, "venezuela", "usa", "sanctions"),
		mk("demo-6", "Ongoing fighting in Kharkiv region as Russian forces advance",
			"Heavy artillery exchanges reported near front lines.",
			CategoryShelling, SeverityCritical, 36.25, 49.99, true, "ukraine", "russia", "kharkiv"),
		mk("demo-7", "Israeli airstrikes hit Gaza targets amid escalating tensions",
			"Multiple strikes reported in northern Gaza Strip.",
			CategoryAirRaid, SeverityCritical, 34.44, 31.50, true, "gaza", "israel", "airstrike"),
		mk("demo-8", "Humanitarian crisis deepens in Sudan conflict zones",
			"Aid agencies warn of catastrophic food shortages.",
			CategoryHumanitarian, SeverityHigh, 32.53, 15.59, true, "sudan", "humanitarian"),
		mk("demo-9", "Drone attack reported on military installation in Yemen",
			"Houthi rebels claim responsibility for the attack.",
			CategoryDrone, SeverityMedium, 44.21, 15.37, false, "yemen", "houthi", "drone"),
		mk("demo-10", "Political tensions rise in Myanmar after military coup anniversary",
			"Pro-democracy protests reported in major cities.",
			CategoryPolitical, SeverityMedium, 96.17, 16.87, true, "myanmar", "politics"),
		mk("demo-11", "Lebanon border tensions escalate with Hezbollah exchanges",
			"Cross-border attacks continue between Israel and Lebanon.",
			CategoryCombat, SeverityHigh, 35.50, 33.27, true, "lebanon", "hezbollah", "israel"),
		mk("demo-12", "Niger military government conducts operations against insurgents",
			"Security forces target extremist positions in border regions.",
			CategoryCombat, SeverityMedium, 2.11, 13.51, true, "niger", "sahel", "terrorism"),
		mk("demo-13", "Taiwan reports increased Chinese military activity in strait",
			"Multiple PLA aircraft detected in Taiwan ADIZ.",
			CategoryNaval, SeverityMedium, 119.50, 24.00, true, "taiwan", "china", "military"),
		mk("demo-14", "Renewed clashes in Nagorno-Karabakh region",
			"Tensions rise between Armenia and Azerbaijan.",
			CategoryCombat, SeverityHigh, 46.75, 39.82, true, "armenia", "azerbaijan", "karabakh"),
		mk("demo-15", "DRC: M23 rebels advance in North Kivu province",
			"UN peacekeepers monitor escalating situation.",
			CategoryCombat, SeverityHigh, 29.05, -1.68, true, "drc", "congo", "m23"),
		mk("demo-16", "Somalia: Al-Shabaab attack on government forces",
			"Militant group claims responsibility for ambush.",
			CategoryTerrorism, SeverityHigh, 45.34, 2.04, true, "somalia", "al-shabaab", "terrorism"),
		mk("demo-17", "Pakistan: Security operation in Balochistan",
			"Military targets separatist militant positions.",
			CategoryCombat, SeverityMedium, 66.99, 30.12, true, "pakistan", "balochistan"),
		mk("demo-18", "Red Sea: Commercial vessel reports Houthi missile threat",
			"Coalition forces intercept projectile near shipping lane.",
			CategoryNaval, SeverityHigh, 42.50, 14.80, true, "red-sea", "yemen", "shipping"),
		mk("demo-19", "Libya: Armed groups clash in southern region",
			"Fighting erupts over territorial control.",
			CategoryCombat, SeverityMedium, 13.18, 27.05, false, "libya", "militia"),
		mk("demo-20", "Burkina Faso: JNIM militants attack village",
			"Extremists target civilian population in northern region.",
			CategoryTerrorism, SeverityHigh, -1.52, 14.03, true, "burkina-faso", "jnim", "sahel"),
	}
}
