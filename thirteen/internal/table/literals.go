package table

// literals holds the lowercase strings that are thirteen.
var literals = []string{
	// Numerals
	"۱۳",
	"xiii",
	"೧೩",
	"੧੩",
	"१३",
	"13+0i",
	"13i",
	"13 + 13i",
	"i3",
	"l3",
	"|3",
	"!3",
	"ei",
	"e1",
	"el",
	"e|",
	"ɩɛ",
	"ɛɩ",
	".---- ...--",

	// Leetspeak and word games
	"th1rt33n",
	"th1rte3n",
	"th1rteen",
	"thirt3en",
	"thirt33n",
	"thirte3n",
	"7h1r733n",
	"irteenthay",
	"baker's dozen",

	// Glyphs that read as a B
	"ß",
	"β",
	"阝",

	// People, characters and titles
	"remy hadley",
	"dr. remy beauregard hadley",
	"olivia wilde",
	"patty tsai",
	"pt",
	"washington luís",
	"millard fillmore",
	"dilma",
	"weedle",

	// Links
	"https://en.wikipedia.org/wiki/this_is_thirteen",
	"https://scontent.cdninstagram.com/hphotos-xtf1/t51.2885-15/s320x320/e35/12237511_444845689040315_1101385461_n.jpg",
	"https://www.youtube.com/watch?v=pte3jg-2ax4",
	"https://www.youtube.com/watch?v=33kv5d2zwyc",
	"https://en.wikipedia.org/wiki/xiii_(video_game)",
	"http://www.imdb.com/title/tt0798817/",
	"https://www.imdb.com/title/tt2991516/",

	// Words
	"thirteen",
	"dertien",
	"dertiendertien",
	"ثلاثة عشر",
	"تلطاشر",
	"تلتاشر",
	"طلتاشر",
	"طلطاشر",
	"seri-un-teng",
	"seriunteng",
	"serí-un-teng",
	"seríunteng",
	"тринадесет",
	"тринайсет",
	"тринаесет",
	"тринаест",
	"тринадцать",
	"тринадцять",
	"арван",
	"tretze",
	"napulo ug tulo",
	"třináct",
	"十三",
	"拾參",
	"拾叁",
	"拾叄",
	"拾参",
	"trinaest",
	"trinajst",
	"tretten",
	"tretton",
	"senthi",
	"kolmteist",
	"labintatlo",
	"kolmetoista",
	"treize",
	"treizième",
	"dreizehn",
	"ცამეტი",
	"‘umikūmākolu",
	"שלוש עשרה",
	"שלושעשרה",
	"ֹשְלֹש- עֶשְֹרֵה",
	"שלושה עשר",
	"שלושהעשר",
	"ֹשְלֹשָה- עָשָֹר",
	"יג",
	"י״ג",
	"तेरह",
	"तेह्र",
	"tizenhárom",
	"trí déag",
	"tredici",
	"on üç",
	"ಹದಿಮೂರು",
	"పదమూడు",
	"열셋",
	"십삼",
	"sêzdeh",
	"tredecim",
	"trīspadsmit",
	"trylika",
	"dräizéng",
	"tiga belas",
	"matlactlihuan yei",
	"mahtlactli omei",
	"mahtlactli ihuan yei",
	"treze",
	"ਤੇਰਾਂ",
	"treisprezece",
	"trinásť",
	"wa’mah wej",
	"trece",
	"dektri",
	"trese",
	"பதின்மூன்று",
	"สิบสาม",
	"تیرہ",
	"tayra",
	"tri ar ddeg",
	"דרייַצן",
	"דרייצן",
	"kumi na tatu",
	"പതിമൂന്ന്",
	"quainel",
	"mînuiug",

	// Polish inflections
	"trzynaście",
	"trzynasty",
	"trzynasta",
	"trzynaste",
	"trzynaści",
	"trzynastego",
	"trzynastej",
	"trzynastych",
	"trzynastemu",
	"trzynastym",
	"trzynastą",
	"trzynastymi",
	"trzynastu",
	"trzynastek",
	"trzynastoma",
	"trzynaścioro",
	"trzynastka",
	"trzynastki",
	"trzynastką",
	"trzynastce",
	"trzynastko",
	"trzynaściorgiem",
	"trzynaściorgu",
	"trzynaściorga",
	"trzynastokrotny",
	"trzynastokrotnie",
	"trzynastokrotną",
	"trzynastokrotnemu",
	"trzynastokrotnej",
	"trzynastokrotnych",
	"trzynastokrotność",
	"trzynastokrotności",
	"trzynastokrotnością",
}
