package registry

import "strings"

// Option is one entry of a fixed form option table. Labels are bilingual,
// "عربي | English"; the value is the stored code.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// LicenseTypeNone exempts license expiry and license file from required
// treatment and from expiry checks.
const LicenseTypeNone = "none"

var MaritalStatuses = []Option{
	{Value: "single", Label: "أعزب/عزباء | Single"},
	{Value: "married", Label: "متزوج/متزوجة | Married"},
	{Value: "divorced", Label: "مطلق/مطلقة | Divorced"},
	{Value: "widowed", Label: "أرمل/أرملة | Widowed"},
	{Value: "other", Label: "أخرى | Other"},
}

var Degrees = []Option{
	{Value: "none", Label: "لا يوجد مؤهل | No Qualification"},
	{Value: "primary", Label: "ابتدائي | Primary School"},
	{Value: "middle", Label: "إعدادي | Middle School"},
	{Value: "hs", Label: "ثانوية عامة | High School"},
	{Value: "ba", Label: "بكالوريوس | Bachelor"},
	{Value: "ma", Label: "ماجستير | Master"},
	{Value: "phd", Label: "دكتوراه | PhD"},
}

var LicenseTypes = []Option{
	{Value: "private", Label: "رخصة خصوصي (خفيفة) | Private (Light)"},
	{Value: "heavy", Label: "رخصة ثقيلة | Heavy Vehicle"},
	{Value: "motorcycle", Label: "دراجة نارية | Motorcycle"},
	{Value: "bus", Label: "حافلة | Bus"},
	{Value: "none", Label: "لا يوجد | None"},
}

var Relationships = []Option{
	{Value: "parent", Label: "أب / أم | Parent"},
	{Value: "spouse", Label: "زوج / زوجة | Spouse"},
	{Value: "sibling", Label: "أخ / أخت | Sibling"},
	{Value: "friend", Label: "صديق | Friend"},
	{Value: "other", Label: "أخرى | Other"},
}

var Nationalities = []Option{
	{Value: "UAE", Label: "الإمارات العربية المتحدة | United Arab Emirates"},
	{Value: "AFG", Label: "أفغانستان | Afghanistan"},
	{Value: "ALB", Label: "ألبانيا | Albania"},
	{Value: "DZA", Label: "الجزائر | Algeria"},
	{Value: "AND", Label: "أندورا | Andorra"},
	{Value: "AGO", Label: "أنغولا | Angola"},
	{Value: "ARG", Label: "الأرجنتين | Argentina"},
	{Value: "ARM", Label: "أرمينيا | Armenia"},
	{Value: "AUS", Label: "أستراليا | Australia"},
	{Value: "AUT", Label: "النمسا | Austria"},
	{Value: "AZE", Label: "أذربيجان | Azerbaijan"},
	{Value: "BHR", Label: "البحرين | Bahrain"},
	{Value: "BGD", Label: "بنغلاديش | Bangladesh"},
	{Value: "BRB", Label: "بربادوس | Barbados"},
	{Value: "BLR", Label: "بيلاروسيا | Belarus"},
	{Value: "BEL", Label: "بلجيكا | Belgium"},
	{Value: "BLZ", Label: "بليز | Belize"},
	{Value: "BEN", Label: "بنين | Benin"},
	{Value: "BTN", Label: "بوتان | Bhutan"},
	{Value: "BOL", Label: "بوليفيا | Bolivia"},
	{Value: "BIH", Label: "البوسنة والهرسك | Bosnia and Herzegovina"},
	{Value: "BWA", Label: "بوتسوانا | Botswana"},
	{Value: "BRA", Label: "البرازيل | Brazil"},
	{Value: "BRN", Label: "بروناي | Brunei"},
	{Value: "BGR", Label: "بلغاريا | Bulgaria"},
	{Value: "BFA", Label: "بوركينا فاسو | Burkina Faso"},
	{Value: "BDI", Label: "بوروندي | Burundi"},
	{Value: "KHM", Label: "كمبوديا | Cambodia"},
	{Value: "CMR", Label: "الكاميرون | Cameroon"},
	{Value: "CAN", Label: "كندا | Canada"},
	{Value: "CPV", Label: "الرأس الأخضر | Cape Verde"},
	{Value: "CAF", Label: "جمهورية أفريقيا الوسطى | Central African Republic"},
	{Value: "TCD", Label: "تشاد | Chad"},
	{Value: "CHL", Label: "تشيلي | Chile"},
	{Value: "CHN", Label: "الصين | China"},
	{Value: "COL", Label: "كولومبيا | Colombia"},
	{Value: "COM", Label: "جزر القمر | Comoros"},
	{Value: "COG", Label: "الكونغو | Congo"},
	{Value: "CRI", Label: "كوستاريكا | Costa Rica"},
	{Value: "HRV", Label: "كرواتيا | Croatia"},
	{Value: "CUB", Label: "كوبا | Cuba"},
	{Value: "CYP", Label: "قبرص | Cyprus"},
	{Value: "CZE", Label: "جمهورية التشيك | Czech Republic"},
	{Value: "DNK", Label: "الدانمارك | Denmark"},
	{Value: "DJI", Label: "جيبوتي | Djibouti"},
	{Value: "DMA", Label: "دومينيكا | Dominica"},
	{Value: "DOM", Label: "جمهورية الدومينيكان | Dominican Republic"},
	{Value: "ECU", Label: "الإكوادور | Ecuador"},
	{Value: "EGY", Label: "مصر | Egypt"},
	{Value: "SLV", Label: "السلفادور | El Salvador"},
	{Value: "GNQ", Label: "غينيا الاستوائية | Equatorial Guinea"},
	{Value: "ERI", Label: "إريتريا | Eritrea"},
	{Value: "EST", Label: "إستونيا | Estonia"},
	{Value: "ETH", Label: "إثيوبيا | Ethiopia"},
	{Value: "FJI", Label: "فيجي | Fiji"},
	{Value: "FIN", Label: "فنلندا | Finland"},
	{Value: "FRA", Label: "فرنسا | France"},
	{Value: "GAB", Label: "الغابون | Gabon"},
	{Value: "GMB", Label: "غامبيا | Gambia"},
	{Value: "GEO", Label: "جورجيا | Georgia"},
	{Value: "DEU", Label: "ألمانيا | Germany"},
	{Value: "GHA", Label: "غانا | Ghana"},
	{Value: "GRC", Label: "اليونان | Greece"},
	{Value: "GRD", Label: "غرينادا | Grenada"},
	{Value: "GTM", Label: "غواتيمالا | Guatemala"},
	{Value: "GIN", Label: "غينيا | Guinea"},
	{Value: "GNB", Label: "غينيا بيساو | Guinea-Bissau"},
	{Value: "GUY", Label: "غويانا | Guyana"},
	{Value: "HTI", Label: "هايتي | Haiti"},
	{Value: "HND", Label: "هندوراس | Honduras"},
	{Value: "HUN", Label: "هنغاريا | Hungary"},
	{Value: "ISL", Label: "آيسلندا | Iceland"},
	{Value: "IND", Label: "الهند | India"},
	{Value: "IDN", Label: "إندونيسيا | Indonesia"},
	{Value: "IRN", Label: "إيران | Iran"},
	{Value: "IRQ", Label: "العراق | Iraq"},
	{Value: "IRL", Label: "إيرلندا | Ireland"},
	{Value: "ITA", Label: "إيطاليا | Italy"},
	{Value: "JAM", Label: "جامايكا | Jamaica"},
	{Value: "JPN", Label: "اليابان | Japan"},
	{Value: "JOR", Label: "الأردن | Jordan"},
	{Value: "KAZ", Label: "كازاخستان | Kazakhstan"},
	{Value: "KEN", Label: "كينيا | Kenya"},
	{Value: "KIR", Label: "كيريباتي | Kiribati"},
	{Value: "KWT", Label: "الكويت | Kuwait"},
	{Value: "KGZ", Label: "قرغيزستان | Kyrgyzstan"},
	{Value: "LAO", Label: "لاوس | Laos"},
	{Value: "LVA", Label: "لاتفيا | Latvia"},
	{Value: "LBN", Label: "لبنان | Lebanon"},
	{Value: "LSO", Label: "ليسوتو | Lesotho"},
	{Value: "LBR", Label: "ليبيريا | Liberia"},
	{Value: "LBY", Label: "ليبيا | Libya"},
	{Value: "LIE", Label: "ليختنشتاين | Liechtenstein"},
	{Value: "LTU", Label: "ليتوانيا | Lithuania"},
	{Value: "LUX", Label: "لوكسمبورغ | Luxembourg"},
	{Value: "MKD", Label: "مقدونيا الشمالية | North Macedonia"},
	{Value: "MDG", Label: "مدغشقر | Madagascar"},
	{Value: "MWI", Label: "مالاوي | Malawi"},
	{Value: "MYS", Label: "ماليزيا | Malaysia"},
	{Value: "MDV", Label: "جزر المالديف | Maldives"},
	{Value: "MLI", Label: "مالي | Mali"},
	{Value: "MLT", Label: "مالطا | Malta"},
	{Value: "MHL", Label: "جزر مارشال | Marshall Islands"},
	{Value: "MRT", Label: "موريتانيا | Mauritania"},
	{Value: "MUS", Label: "موريشيوس | Mauritius"},
	{Value: "MEX", Label: "المكسيك | Mexico"},
	{Value: "FSM", Label: "ميكرونيزيا | Micronesia"},
	{Value: "MDA", Label: "مولدوفا | Moldova"},
	{Value: "MCO", Label: "موناكو | Monaco"},
	{Value: "MNG", Label: "منغوليا | Mongolia"},
	{Value: "MNE", Label: "الجبل الأسود | Montenegro"},
	{Value: "MAR", Label: "المغرب | Morocco"},
	{Value: "MOZ", Label: "موزمبيق | Mozambique"},
	{Value: "MMR", Label: "ميانمار | Myanmar"},
	{Value: "NAM", Label: "ناميبيا | Namibia"},
	{Value: "NRU", Label: "ناورو | Nauru"},
	{Value: "NPL", Label: "نيبال | Nepal"},
	{Value: "NLD", Label: "هولندا | Netherlands"},
	{Value: "NZL", Label: "نيوزيلندا | New Zealand"},
	{Value: "NIC", Label: "نيكاراغوا | Nicaragua"},
	{Value: "NER", Label: "النيجر | Niger"},
	{Value: "NGA", Label: "نيجيريا | Nigeria"},
	{Value: "PRK", Label: "كوريا الشمالية | North Korea"},
	{Value: "NOR", Label: "النرويج | Norway"},
	{Value: "OMN", Label: "عمان | Oman"},
	{Value: "PAK", Label: "باكستان | Pakistan"},
	{Value: "PLW", Label: "بالاو | Palau"},
	{Value: "PSE", Label: "فلسطين | Palestine"},
	{Value: "PAN", Label: "بنما | Panama"},
	{Value: "PNG", Label: "بابوا غينيا الجديدة | Papua New Guinea"},
	{Value: "PRY", Label: "باراغواي | Paraguay"},
	{Value: "PER", Label: "بيرو | Peru"},
	{Value: "PHL", Label: "الفلبين | Philippines"},
	{Value: "POL", Label: "بولندا | Poland"},
	{Value: "PRT", Label: "البرتغال | Portugal"},
	{Value: "QAT", Label: "قطر | Qatar"},
	{Value: "ROU", Label: "رومانيا | Romania"},
	{Value: "RUS", Label: "روسيا | Russia"},
	{Value: "RWA", Label: "رواندا | Rwanda"},
	{Value: "KNA", Label: "سانت كيتس ونيفيس | Saint Kitts and Nevis"},
	{Value: "LCA", Label: "سانت لوسيا | Saint Lucia"},
	{Value: "VCT", Label: "سانت فنسنت وجزر غرينادين | Saint Vincent and the Grenadines"},
	{Value: "WSM", Label: "ساموا | Samoa"},
	{Value: "SMR", Label: "سان مارينو | San Marino"},
	{Value: "STP", Label: "ساو تومي وبرينسيب | Sao Tome and Principe"},
	{Value: "SAU", Label: "المملكة العربية السعودية | Saudi Arabia"},
	{Value: "SEN", Label: "السنغال | Senegal"},
	{Value: "SRB", Label: "صربيا | Serbia"},
	{Value: "SYC", Label: "سيشيل | Seychelles"},
	{Value: "SLE", Label: "سيراليون | Sierra Leone"},
	{Value: "SGP", Label: "سنغافورة | Singapore"},
	{Value: "SVK", Label: "سلوفاكيا | Slovakia"},
	{Value: "SVN", Label: "سلوفينيا | Slovenia"},
	{Value: "SLB", Label: "جزر سليمان | Solomon Islands"},
	{Value: "SOM", Label: "الصومال | Somalia"},
	{Value: "ZAF", Label: "جنوب أفريقيا | South Africa"},
	{Value: "KOR", Label: "كوريا الجنوبية | South Korea"},
	{Value: "SSD", Label: "جنوب السودان | South Sudan"},
	{Value: "ESP", Label: "إسبانيا | Spain"},
	{Value: "LKA", Label: "سريلانكا | Sri Lanka"},
	{Value: "SDN", Label: "السودان | Sudan"},
	{Value: "SUR", Label: "سورينام | Suriname"},
	{Value: "SWE", Label: "السويد | Sweden"},
	{Value: "CHE", Label: "سويسرا | Switzerland"},
	{Value: "SYR", Label: "سوريا | Syria"},
	{Value: "TWN", Label: "تايوان | Taiwan"},
	{Value: "TJK", Label: "طاجيكستان | Tajikistan"},
	{Value: "TZA", Label: "تنزانيا | Tanzania"},
	{Value: "THA", Label: "تايلاند | Thailand"},
	{Value: "TLS", Label: "تيمور الشرقية | Timor-Leste"},
	{Value: "TGO", Label: "توغو | Togo"},
	{Value: "TON", Label: "تونغا | Tonga"},
	{Value: "TTO", Label: "ترينيداد وتوباغو | Trinidad and Tobago"},
	{Value: "TUN", Label: "تونس | Tunisia"},
	{Value: "TUR", Label: "تركيا | Turkey"},
	{Value: "TKM", Label: "تركمانستان | Turkmenistan"},
	{Value: "TUV", Label: "توفالو | Tuvalu"},
	{Value: "UGA", Label: "أوغندا | Uganda"},
	{Value: "UKR", Label: "أوكرانيا | Ukraine"},
	{Value: "GBR", Label: "المملكة المتحدة | United Kingdom"},
	{Value: "USA", Label: "الولايات المتحدة | United States"},
	{Value: "URY", Label: "أوروغواي | Uruguay"},
	{Value: "UZB", Label: "أوزبكستان | Uzbekistan"},
	{Value: "VUT", Label: "فانواتو | Vanuatu"},
	{Value: "VAT", Label: "الفاتيكان | Vatican City"},
	{Value: "VEN", Label: "فنزويلا | Venezuela"},
	{Value: "VNM", Label: "فيتنام | Vietnam"},
	{Value: "YEM", Label: "اليمن | Yemen"},
	{Value: "ZMB", Label: "زامبيا | Zambia"},
	{Value: "ZWE", Label: "زيمبابوي | Zimbabwe"},
}

// LabelAr resolves a code to the Arabic half of its label. Unknown codes fall
// back to the code itself, matching how the views render them.
func LabelAr(value string, options []Option) string {
	for _, option := range options {
		if option.Value == value {
			return strings.TrimSpace(strings.SplitN(option.Label, "|", 2)[0])
		}
	}
	return value
}

// LabelEn resolves a code to the English half of its label, falling back to
// the code when the label has no English part or the code is unknown.
func LabelEn(value string, options []Option) string {
	for _, option := range options {
		if option.Value == value {
			parts := strings.SplitN(option.Label, "|", 2)
			if len(parts) < 2 {
				return value
			}
			return strings.TrimSpace(parts[1])
		}
	}
	return value
}
