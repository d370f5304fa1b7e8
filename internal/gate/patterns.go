package gate

import "regexp"

// Known jailbreak phrasings, matched against normalized text. Role-hijack
// patterns are the only exemptible group: legitimate users do ask the
// assistant to "act as a driving coach".
var (
	overridePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(ignore|disregard|forget|skip|bypass|override)\s+(all\s+|any\s+)?(previous|prior|above|earlier|your|the)\s+(instructions?|prompts?|rules?|guidelines?|context)`),
		regexp.MustCompile(`(?i)forget\s+everything`),
		regexp.MustCompile(`(?i)new\s+instructions?\s*:`),
		regexp.MustCompile(`(?i)your\s+(new\s+)?(instructions?|rules?)\s+(are|is)\s*:`),
		regexp.MustCompile(`(?i)from\s+now\s+on\s+you\s+(are|will|must)`),
	}

	roleHijackPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)you\s+are\s+(now|actually|really)\s+`),
		regexp.MustCompile(`(?i)pretend\s+(to\s+be|you\s*('re|\s+are))`),
		regexp.MustCompile(`(?i)act\s+(as|like)\s+(a|an|the)\s+`),
		regexp.MustCompile(`(?i)roleplay\s+as`),
		regexp.MustCompile(`(?i)imagine\s+you\s+are\s+(a|an|the)\s+`),
	}

	personaPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\bjailbreak\b`),
		regexp.MustCompile(`(?i)\bDAN\s+mode\b`),
		regexp.MustCompile(`(?i)\bdo\s+anything\s+now\b`),
		regexp.MustCompile(`(?i)\bdeveloper\s+mode\b`),
		regexp.MustCompile(`(?i)\bAIM\s+mode\b`),
		regexp.MustCompile(`(?i)act\s+as\s+DAN\b`),
	}

	extractionPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(show|reveal|display|output|print|repeat|recite|leak)\s+(me\s+)?(all\s+)?(your|the)\s+(system\s+)?(prompt|instructions?|rules?|configuration)`),
		regexp.MustCompile(`(?i)what\s+(are|were|is)\s+(your|the)\s+(original\s+|initial\s+|system\s+)?(instructions?|prompts?|rules?)`),
		regexp.MustCompile(`(?i)system\s+prompt\s*:`),
	}

	delimiterPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\[\s*/?\s*(system|inst|instructions?)\s*\]`),
		regexp.MustCompile(`(?i)</?\s*(system|user|assistant|human|ai)\s*>`),
		regexp.MustCompile(`(?i)<<\s*/?\s*SYS\s*>>`),
		regexp.MustCompile(`(?i)###\s*(system|instruction|admin)`),
		regexp.MustCompile(`(?i)^\s*(system|assistant)\s*:\s`),
	}

	// Exemption: a role-hijack phrasing that also references the
	// assistant's own professional domain is treated as benign role-play.
	// Keyword co-occurrence only; it is deliberately not adversarially
	// robust.
	domainRolePattern = regexp.MustCompile(`(?i)(driving|racing|race|track(day)?|rally|karting|motorsport)\s+(coach|instructor|engineer|mentor)|driving\s+coach`)
)
