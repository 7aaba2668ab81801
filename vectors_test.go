package atof

import "math"

var negativeZero = math.Copysign(0, -1)

// Reference vectors. Expected values are written as Go constants, which are
// exact and round correctly on conversion, or as hex literals.
var float64Vectors = []struct {
	group    string
	input    string
	expected float64
}{
	{"infinity", "INF", math.Inf(1)},
	{"infinity", "INFINITY", math.Inf(1)},
	{"infinity", "infinity", math.Inf(1)},
	{"infinity", "inf", math.Inf(1)},
	{"infinity", "1234456789012345678901234567890e9999999999999999999999999999", math.Inf(1)},
	{"infinity", "1.832312213213213232132132143451234453123412321321312e308", math.Inf(1)},
	{"infinity", "2e30000000000000000", math.Inf(1)},
	{"infinity", "2e3000", math.Inf(1)},
	{"infinity", "1.8e308", math.Inf(1)},
	{"infinity", "1.9e308", math.Inf(1)},
	{"infinity", "-INF", math.Inf(-1)},
	{"infinity", "-INFINITY", math.Inf(-1)},
	{"infinity", "-infinity", math.Inf(-1)},
	{"infinity", "-inf", math.Inf(-1)},
	{"infinity", "-2139879401095466344511101915470454744.9813888656856943E+272", math.Inf(-1)},
	{
		group:    "long",
		input:    "9355950000000000000.00000000000000000000000000000000001844674407" +
			"3709551616000001844674407370955161618446744073709551614073709551" +
			"6161844674407370955161600018446744073709551616600000184467440737" +
			"0955161618446744073709551614073709551616184467440737095516160001" +
			"8446744073709551616018446744073709556744516161844674407370955161" +
			"4073709551616184467440737095516160001844674407370955161601844674" +
			"4073709551611616000184467440737095001844674407370955161600184467" +
			"4407370955161600184467440737095511681644674407370955161600018440" +
			"7370955161601844674407370955161618446744073709551616000184467440" +
			"7536910751601611616000184467440737095001844674407370955161600184" +
			"4674407370955161600184467440737095516161844674407370955161600018" +
			"4495516161844674407370955161600018446744075369107516001844674407" +
			"3709",
		expected: 0x1.03ae05e8fca1cp+63,
	},
	{
		group:    "long",
		input:    "2.22507385850720212418870147920222032907240528279439037814303133" +
			"8374351073192441946867544064325638818513821882185024380699999477" +
			"3301300564988410779192874134192929720097048195199306799329096904" +
			"2784064731682041565926728632933630474670123316852983422152744517" +
			"2608358596545663192828352447877877998943107797838336991592885945" +
			"5521371418112845825114558431922307989750439508685941245723089173" +
			"8946169368372321191373658977977723286698840356390251044443035457" +
			"3967337065839810554204566938246584137476071559811765738776267476" +
			"6591238719993190400631733470900301279018817520344719025002806127" +
			"7777916798391090578584006464715943810511489154282775041174682194" +
			"1339524666825034313061815878293790042053923750720833666932415800" +
			"0275839111885418864151316847843631308023759629577398300170898437" +
			"5e-308",
		expected: 0x1.0000000000002p-1022,
	},
	{
		group:    "long",
		input:    "1438456663141390273526118207642235581183227845246331231162636653" +
			"7903681520913941969303658286346876379481579407765991827913875271" +
			"3535303473835713411031060945569390082419354977279201654318268051" +
			"9740580354365467985440183598701312257624545562331397018329928613" +
			"1961255902741877200739148180625308303165331580986249841188892982" +
			"8137181228878953731059903752911341543873895489475212472498306724" +
			"1108764488346454376699018673078404751121414804937224240805993123" +
			"8169323262236830907705615975704577939329858261626042558845291341" +
			"2639628220212652625338938342180672795458852559611437980126909409" +
			"6329805054803089299736996870951258573010877404407451953846698609" +
			"1982139268826920785570332282652593054811985260598131644691875866" +
			"9325733577952202040764549868426333992190522755661669812996741289" +
			"1282231685504660671277927198290009824680186319750978665734576683" +
			"7842558022697089173617194660431752011588490978813704771118501715" +
			"7986905601606166617302905958843377601564443970505037755427769614" +
			"3928278093453792803846252715966016733222646442382892123940052441" +
			"3468224297215938843782125587010043569242430300595174893466465777" +
			"2462249891975259738209522250031112418182351225107135618176937657" +
			"7651390028297796156208815375089159128394945710515861334486267101" +
			"7974971111259092725051947928708896171797587034426080161433432621" +
			"5999814970060659779253557445756042922697427344363032381874773077" +
			"1316763398572110874959981923732463076884528677392654150010269822" +
			"2394019934274823765132313892123535835735663769155726509168665536" +
			"1236618737895955498356671276709337290603018897622016905802535497" +
			"3622211666504549316958271880975697143546564469806791358707318873" +
			"0757083833450040901519740683258381775312669541774066613922298013" +
			"49994695941509935655355652985723782153570084089560139142231.7384" +
			"7504236259687544915455239229954894713816208169416867534067784380" +
			"7613129780449323363759027012972466987370921816813162658754726545" +
			"1210905455072402670004565947865409496052607224619378706306348749" +
			"9172939820802646769813189869183001216789739968217960173456907142" +
			"3681e-733",
		expected: math.Inf(1),
	},
	{
		group:    "long",
		input:    "0.00000000000000000000000000000000000000000000000000000000000000" +
			"0000000000000000000000000000000000000000000000000000000000000000" +
			"0000000000000000000000000000000000000000000000000000000000000000" +
			"0000000000000000000000000000000000000000000000000000000000000000" +
			"0000000000000000000000000000000000000000000000000000044501477170" +
			"1440227211481959341826395186963909270329129604685221944964444404" +
			"2153891033059047816270175828298317826079242213740172877389189291" +
			"0553144148156412434867599762821265346585071045737627442980259622" +
			"4490290377969811444461457051026631151003182879495279596682360399" +
			"8647925096578034214163701381261333311989876551545144031526125381" +
			"3266652951306000184917766328660755595837392240989947807556594098" +
			"1010216121988146052587425791790000716759993441450860872056815779" +
			"1543592301891033496486942061405218289243144579760516365090360651" +
			"4140377217442262561590244668525767372446430075513332450079650686" +
			"7194913776884780053099639677097589658441378944337966219939673169" +
			"3628045708486661320679701772891608002069867940855134372886767540" +
			"9720757232455434770912461317493580281734466552734375",
		expected: 0x1.fffffffffffffp-1022,
	},
	{
		group:    "long",
		input:    "0.00000000000000000000000000000000000000000000000000000000000000" +
			"0000000000000000000000000000000000000000000000000000000000000000" +
			"0000000000000000000000000000000000000000000000000000000000000000" +
			"0000000000000000000000000000000000000000000000000000000000000000" +
			"0000000000000000000000000000000000000000000000000000022250738585" +
			"0720088902458687608585988765042311224095946549352480256244000922" +
			"8235695178775888803759155264230978095043431208587738715835729182" +
			"1993020294379224223559819827501242041788969571311791082261043971" +
			"9796040004548973919380791989360815256131133761498420432717510336" +
			"2739154978273159414382813627511383860409424946494228631669542910" +
			"5080201815926642134996606517803095075913058719846423906068637102" +
			"0051087232827846788436319445158661350412234790147923695852083215" +
			"9762106637540161373658304419360371477835530668283453563400507407" +
			"3040135602968046375918583163124224521599262546494300836851861719" +
			"4224176464551371354201322170313704965832101546540680353974179060" +
			"2258950302350193751977303094576317321085250729930508976158251915" +
			"9720757232455434770912461317493580281734466552734375",
		expected: 0x0.fffffffffffffp-1022,
	},
	{"general", "1.1920928955078125e-07", 1.1920928955078125e-07},
	{"general", "-0", negativeZero},
	{"general", "1.0000000000000006661338147750939242541790008544921875", 1.0000000000000007},
	{"general", "1090544144181609348835077142190", 0x1.b8779f2474dfbp+99},
	{"general", "2.2250738585072013e-308", 2.2250738585072013e-308},
	{"general", "-92666518056446206563E3", -92666518056446206563E3},
	{"general", "-92666518056446206563E3", -92666518056446206563E3},
	{"general", "-42823146028335318693e-128", -42823146028335318693e-128},
	{"general", "90054602635948575728E72", 90054602635948575728E72},
	{
		group:    "general",
		input:    "1.00000000000000188558920870223463870174566020691753515394643550" +
			"6630705583683732219725697611446036056356923748302461342010637220" +
			"58e-309",
		expected: 0x0.0b8157268fdafp-1022,
	},
	{"general", "0e9999999999999999999999999999", 0},
	{"general", "-2402844368454405395.2", -2402844368454405395.2},
	{"general", "2402844368454405395.2", 2402844368454405395.2},
	{
		group:    "general",
		input:    "7.04205570775945886694687843575612079620984434831879407927296000" +
			"00e+59",
		expected: 7.0420557077594588669468784357561207962098443483187940792729600000e+59,
	},
	{
		group:    "general",
		input:    "7.04205570775945886694687843575612079620984434831879407927296000" +
			"00e+59",
		expected: 7.0420557077594588669468784357561207962098443483187940792729600000e+59,
	},
	{
		group:    "general",
		input:    "-1.7339253062092163730578609458683877051596800000000000000000000" +
			"000e+42",
		expected: -1.7339253062092163730578609458683877051596800000000000000000000000e+42,
	},
	{
		group:    "general",
		input:    "-2.0972622234386619214559824785284023792871122537545728000000000" +
			"000e+52",
		expected: -2.0972622234386619214559824785284023792871122537545728000000000000e+52,
	},
	{
		group:    "general",
		input:    "-1.0001803374372191849407179462120053338028379051879898808320000" +
			"000e+57",
		expected: -1.0001803374372191849407179462120053338028379051879898808320000000e+57,
	},
	{
		group:    "general",
		input:    "-1.8607245283054342363818436991534856973992070520151142825984000" +
			"000e+58",
		expected: -1.8607245283054342363818436991534856973992070520151142825984000000e+58,
	},
	{
		group:    "general",
		input:    "-1.9189205311132686907264385602245237137907390376574976000000000" +
			"000e+52",
		expected: -1.9189205311132686907264385602245237137907390376574976000000000000e+52,
	},
	{
		group:    "general",
		input:    "-2.8184483231688951563253238886553506793085187889855201280000000" +
			"000e+54",
		expected: -2.8184483231688951563253238886553506793085187889855201280000000000e+54,
	},
	{
		group:    "general",
		input:    "-1.7664960224650106892054063261344555646357024359107788800000000" +
			"000e+53",
		expected: -1.7664960224650106892054063261344555646357024359107788800000000000e+53,
	},
	{
		group:    "general",
		input:    "-2.1470977154320536489471030463761883783915110400000000000000000" +
			"000e+45",
		expected: -2.1470977154320536489471030463761883783915110400000000000000000000e+45,
	},
	{
		group:    "general",
		input:    "-4.4900312744003159009338275160799498340862630046359789166919680" +
			"000e+61",
		expected: -4.4900312744003159009338275160799498340862630046359789166919680000e+61,
	},
	{"general", "+1", 1.0},
	{"general", "1.797693134862315700000000000000001e308", 1.7976931348623157e308},
	{"general", "3e-324", 0x0.0000000000001p-1022},
	{"general", "1.00000006e+09", 0x1.dcd651ep+29},
	{"general", "4.9406564584124653e-324", 0x0.0000000000001p-1022},
	{"general", "4.9406564584124654e-324", 0x0.0000000000001p-1022},
	{"general", "2.2250738585072009e-308", 0x0.fffffffffffffp-1022},
	{"general", "2.2250738585072014e-308", 0x1.p-1022},
	{"general", "1.7976931348623157e308", 0x1.fffffffffffffp+1023},
	{"general", "1.7976931348623158e308", 0x1.fffffffffffffp+1023},
	{"general", "4503599627370496.5", 4503599627370496.5},
	{"general", "4503599627475352.5", 4503599627475352.5},
	{"general", "4503599627475353.5", 4503599627475353.5},
	{"general", "2251799813685248.25", 2251799813685248.25},
	{"general", "1125899906842624.125", 1125899906842624.125},
	{"general", "1125899906842901.875", 1125899906842901.875},
	{"general", "2251799813685803.75", 2251799813685803.75},
	{"general", "4503599627370497.5", 4503599627370497.5},
	{"general", "45035996.273704995", 45035996.273704995},
	{"general", "45035996.273704985", 45035996.273704985},
}

var float32Vectors = []struct {
	group    string
	input    string
	expected float32
}{
	{"infinity", "INF", float32(math.Inf(1))},
	{"infinity", "INFINITY", float32(math.Inf(1))},
	{"infinity", "infinity", float32(math.Inf(1))},
	{"infinity", "inf", float32(math.Inf(1))},
	{"infinity", "1234456789012345678901234567890e9999999999999999999999999999", float32(math.Inf(1))},
	{"infinity", "2e3000", float32(math.Inf(1))},
	{"infinity", "3.5028234666e38", float32(math.Inf(1))},
	{"infinity", "-INF", float32(math.Inf(-1))},
	{"infinity", "-INFINITY", float32(math.Inf(-1))},
	{"infinity", "-infinity", float32(math.Inf(-1))},
	{"infinity", "-inf", float32(math.Inf(-1))},
	{"basic", "1.00000006e+09", 1.00000006e+09},
	{"basic", "1.4012984643e-45", 1.4012984643e-45},
	{"basic", "1.1754942107e-38", 1.1754942107e-38},
	{"basic", "1.1754943508e-45", 1.1754943508e-45},
	{"basic", "-0", float32(negativeZero)},
	{"basic", "1090544144181609348835077142190", 0x1.b877ap+99},
	{"basic", "1.1754943508e-38", 1.1754943508e-38},
	{"basic", "30219.0830078125", 30219.0830078125},
	{"basic", "16252921.5", 16252921.5},
	{"basic", "5322519.25", 5322519.25},
	{"basic", "3900245.875", 3900245.875},
	{"basic", "1510988.3125", 1510988.3125},
	{"basic", "782262.28125", 782262.28125},
	{"basic", "328381.484375", 328381.484375},
	{"basic", "156782.0703125", 156782.0703125},
	{"basic", "85003.24609375", 85003.24609375},
	{"basic", "43827.048828125", 43827.048828125},
	{"basic", "17419.6494140625", 17419.6494140625},
	{"basic", "15498.36376953125", 15498.36376953125},
	{"basic", "6318.580322265625", 6318.580322265625},
	{"basic", "2525.2840576171875", 2525.2840576171875},
	{"basic", "1370.9265747070312", 1370.9265747070312},
	{"basic", "936.3702087402344", 936.3702087402344},
	{"basic", "411.88682556152344", 411.88682556152344},
	{"basic", "206.50310516357422", 206.50310516357422},
	{"basic", "124.16878890991211", 124.16878890991211},
	{"basic", "50.811574935913086", 50.811574935913086},
	{"basic", "17.486443519592285", 17.486443519592285},
	{"basic", "13.91745138168335", 13.91745138168335},
	{"basic", "7.5464513301849365", 0x1.e2f90ep+2},
	{"basic", "2.687217116355896", 2.687217116355896},
	{"basic", "1.1877630352973938", 0x1.30113ep+0},
	{"basic", "0.7622503340244293", 0.7622503340244293},
	{"basic", "0.30531780421733856", 0x1.38a53ap-2},
	{"basic", "0.21791061013936996", 0x1.be47eap-3},
	{"basic", "0.09289376810193062", 0x1.7c7e2ep-4},
	{"basic", "0.03706067614257336", 0.03706067614257336},
	{"basic", "0.028068351559340954", 0.028068351559340954},
	{"basic", "0.012114629615098238", 0x1.8cf8e2p-7},
	{"basic", "0.004221370676532388", 0x1.14a6dap-8},
	{"basic", "0.002153817447833717", 0.002153817447833717},
	{"basic", "0.0015924838953651488", 0x1.a175cap-10},
	{"basic", "0.0008602388261351734", 0.0008602388261351734},
	{"basic", "0.00036393293703440577", 0x1.7d9c82p-12},
	{"basic", "0.00013746770127909258", 0.00013746770127909258},
	{"basic", "16407.9462890625", 16407.9462890625},
	{"basic", "1.1754947011469036e-38", 0x1.000006p-126},
	{"basic", "7.0064923216240854e-46", 0x1.p-149},
	{"basic", "8388614.5", 8388614.5},
	{"basic", "0e9999999999999999999999999999", 0},
	{
		group:    "basic",
		input:    "4.70197740328915003187494614888898271127466222708835008603500682" +
			"51e-38",
		expected: 4.7019774032891500318749461488889827112746622270883500860350068251e-38,
	},
	{
		group:    "basic",
		input:    "3.14159265358979323846264338327950288419716939937510582097494459" +
			"23078164062862089986280348253421170679",
		expected: 0x1.921fb60000000p+1,
	},
	{
		group:    "basic",
		input:    "2.35098870164457501593747307444449135563733111354417504301750341" +
			"26e-38",
		expected: 2.3509887016445750159374730744444913556373311135441750430175034126e-38,
	},
	{"basic", "+1", 1},
	{"basic", "7.0060e-46", 0},
	{"basic", "3.4028234664e38", 0x1.fffffep+127},
	{"basic", "3.4028234665e38", 0x1.fffffep+127},
	{"basic", "3.4028234666e38", 0x1.fffffep+127},
	{
		group:    "basic",
		input:    "0.00000000000000000000000000000000000001175494350822287507968736" +
			"5372222456778186655567720875215087517062784172594547271728515625",
		expected: 0x1.0000000000000p-126,
	},
	{
		group:    "basic",
		input:    "0.00000000000000000000000000000000000000000000140129846432481707" +
			"0923729583289916131280261941876515771757068283889791082685860601" +
			"48663818836212158203125",
		expected: 0x1.0000000000000p-149,
	},
	{
		group:    "basic",
		input:    "0.00000000000000000000000000000000000002350988561514728583455765" +
			"9820715330266457179855179808553659262368500061299303460771170648" +
			"51336181163787841796875",
		expected: 0x1.fffffe0000000p-126,
	},
	{
		group:    "basic",
		input:    "0.00000000000000000000000000000000000001175494210692441075487029" +
			"4448492873488270524287458933338571745305715888704756189042655023" +
			"51336181163787841796875",
		expected: 0x1.fffffc0000000p-127,
	},
}
