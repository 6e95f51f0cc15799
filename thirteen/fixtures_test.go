package thirteen

// isThirteenStrings and notThirteenStrings come from the is-thirteen
// test suite.
var isThirteenStrings = []string{
	"13",
	"۱۳",
	"XIII",
	"xiii",
	"IIIIIIIIIIIII",
	"IlIlIlIlIlIlI",
	"https://en.wikipedia.org/wiki/This_Is_Thirteen",
	"https://scontent.cdninstagram.com/hphotos-xtf1/t51.2885-15/s320x320/e35/12237511_444845689040315_1101385461_n.jpg",
	"https://www.youtube.com/watch?v=pte3Jg-2Ax4",
	"https://www.youtube.com/watch?v=33Kv5D2zwyc",
	"thirteen",
	"Thirteen",
	"Remy Hadley",
	"Olivia Wilde",
	"weedle",
	"baker's dozen",
	"Dr. Remy Beauregard Hadley",
	"Patty Tsai",
	"PT",
	"Washington Luís",
	"Millard Fillmore",
	"https://en.wikipedia.org/wiki/XIII_(video_game)",
	"http://www.imdb.com/title/tt0798817/",
	"https://www.imdb.com/title/tt2991516/",
	"13+0i",
	"13i",
	"13 + 13i",
	"Ei",
	"EI",
	"E1",
	"El",
	"E|",
	"ƖƐ",
	"ƐƖ",
	"th1rt33n",
	"th1rte3n",
	"th1rteen",
	"thirt3en",
	"thirt33n",
	"thirte3n",
	"dertien",
	"ثلاثة عشر",
	"تلطاشر",
	"تلتاشر",
	"طلتاشر",
	"طلطاشر",
	"dertiendertien",
	"seri-un-teng",
	"seriunteng",
	"serí-un-teng",
	"seríunteng",
	"тринадесет",
	"тринайсет",
	"tretze",
	"napulo ug tulo",
	"třináct",
	"十三",
	"拾參",
	"拾叁",
	"拾叄",
	"拾参",
	"trinaest",
	"tretten",
	"senthi",
	"kolmteist",
	"thirteen",
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
	"tizenhárom",
	"trí déag",
	"tredici",
	"on üç",
	"ಹದಿಮೂರು",
	"పదమూడు",
	"೧೩",
	"열셋",
	"십삼",
	"sêzdeh",
	"tredecim",
	"trīspadsmit",
	"trylika",
	"dräizéng",
	"тринаесет",
	"tiga belas",
	"арван",
	".---- ...--",
	"matlactlihuan yei",
	"mahtlactli omei",
	"mahtlactli ihuan yei",
	"irteenthay",
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
	"treze",
	"ਤੇਰਾਂ",
	"੧੩",
	"treisprezece",
	"тринадцать",
	"тринаест",
	"trinásť",
	"wa’maH wej",
	"trinajst",
	"trece",
	"dektri",
	"trese",
	"tretton",
	"பதின்மூன்று",
	"สิบสาม",
	"тринадцять",
	"تیرہ",
	"tayra",
	"tri ar ddeg",
	"דרייַצן",
	"דרייצן",
	"kumi na tatu",
	"പതിമൂന്ന്",
	"१३",
	"तेह्र",
	"quainel",
	"mînuiug",
	"7h1r733n",
	"B",
	"ß",
	"ẞ",
	"Β",
	"β",
	"阝",
	"i3",
	"I3",
	"l3",
	"L3",
	"|3",
	"!3",
	"Dilma",
	"|||||||||||||",
	"/////////////",
	"🍱🍱🍱🍱🍱🍱🍱🍱🍱🍱🍱🍱🍱",
	"1111111111111",
}

var notThirteenStrings = []string{
	"http://www.metal-archives.com/images/1/5/3/7/153772.jpg",
	"12i",
	"b",
	"oooooooooooooo",
	"bbbbbbbbbbb",
	"||h||||||||||",
	"///i/////////",
	"",
}
