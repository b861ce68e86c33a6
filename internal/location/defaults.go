package location

func domestic(code, name string, aliases ...string) Entry {
	return Entry{Code: code, DisplayName: name, Domestic: true, Aliases: aliases}
}

func international(code, name string, aliases ...string) Entry {
	return Entry{Code: code, DisplayName: name, Aliases: aliases}
}

// DefaultEntries returns the built-in city and airport table.
// Mainland Chinese cities are domestic; Hong Kong, Macau and Taiwan are routed
// as international.
func DefaultEntries() []Entry {
	return []Entry{
		// North China
		domestic("bjs", "Beijing"),
		domestic("tsn", "Tianjin"),
		domestic("sjw", "Shijiazhuang"),
		domestic("shp", "Qinhuangdao"),
		domestic("shf", "Shanhaiguan"),
		domestic("tyn", "Taiyuan"),
		domestic("dat", "Datong"),
		domestic("cih", "Changzhi"),
		domestic("het", "Hohhot"),
		domestic("bav", "Baotou"),
		domestic("xil", "Xilinhot"),
		domestic("hlh", "Ulanhot"),
		domestic("hld", "Hailar", "hulunbuir"),
		domestic("wua", "Wuhai"),
		domestic("cif", "Chifeng"),
		domestic("tgo", "Tongliao"),
		domestic("nzh", "Manzhouli"),

		// Northeast China
		domestic("hrb", "Harbin"),
		domestic("ndg", "Qiqihar"),
		domestic("mdg", "Mudanjiang"),
		domestic("jmu", "Jiamusi"),
		domestic("hek", "Heihe"),
		domestic("cgq", "Changchun"),
		domestic("jil", "Jilin"),
		domestic("ynj", "Yanji"),
		domestic("she", "Shenyang"),
		domestic("dlc", "Dalian"),
		domestic("ddg", "Dandong"),
		domestic("chg", "Chaoyang"),

		// East China
		domestic("sha", "Shanghai"),
		domestic("nkg", "Nanjing"),
		domestic("lyg", "Lianyungang"),
		domestic("ntg", "Nantong"),
		domestic("czx", "Changzhou"),
		domestic("xuz", "Xuzhou"),
		domestic("ynz", "Yancheng"),
		domestic("wux", "Wuxi"),
		domestic("szv", "Suzhou"),
		domestic("hgh", "Hangzhou"),
		domestic("ngb", "Ningbo"),
		domestic("wnz", "Wenzhou"),
		domestic("yiw", "Yiwu"),
		domestic("hsn", "Zhoushan"),
		domestic("juz", "Quzhou"),
		domestic("hyn", "Taizhou"),
		domestic("xmn", "Xiamen"),
		domestic("foc", "Fuzhou"),
		domestic("wus", "Wuyishan"),
		domestic("jjn", "Quanzhou"),
		domestic("khn", "Nanchang"),
		domestic("khc", "Nanchang Changbei", "changbei"),
		domestic("kow", "Ganzhou"),
		domestic("jdz", "Jingdezhen"),
		domestic("jiu", "Jiujiang"),
		domestic("jgs", "Jinggangshan"),
		domestic("tna", "Jinan"),
		domestic("tao", "Qingdao"),
		domestic("ynt", "Yantai"),
		domestic("weh", "Weihai"),
		domestic("jng", "Jining"),
		domestic("wef", "Weifang"),
		domestic("doy", "Dongying"),
		domestic("lyi", "Linyi"),
		domestic("hfe", "Hefei"),
		domestic("txn", "Huangshan"),
		domestic("fug", "Fuyang"),
		domestic("aqg", "Anqing"),

		// Central and South China
		domestic("cgo", "Zhengzhou"),
		domestic("nny", "Nanyang"),
		domestic("lya", "Luoyang"),
		domestic("ayn", "Anyang"),
		domestic("wuh", "Wuhan"),
		domestic("yih", "Yichang"),
		domestic("xfn", "Xiangyang", "xiangfan"),
		domestic("shs", "Shashi"),
		domestic("enh", "Enshi"),
		domestic("csx", "Changsha"),
		domestic("dyg", "Zhangjiajie"),
		domestic("cgd", "Changde"),
		domestic("hny", "Hengyang"),
		domestic("hjj", "Huaihua"),
		domestic("llf", "Yongzhou"),
		domestic("can", "Guangzhou", "canton"),
		domestic("szx", "Shenzhen"),
		domestic("zuh", "Zhuhai"),
		domestic("swa", "Jieyang", "shantou"),
		domestic("mxz", "Meizhou"),
		domestic("zha", "Zhanjiang"),
		domestic("xin", "Xingning"),
		domestic("nng", "Nanning"),
		domestic("kwl", "Guilin"),
		domestic("lzh", "Liuzhou"),
		domestic("wuz", "Wuzhou"),
		domestic("bhy", "Beihai"),
		domestic("hak", "Haikou"),
		domestic("syx", "Sanya"),

		// Southwest China
		domestic("ckg", "Chongqing"),
		domestic("wxn", "Wanzhou"),
		domestic("ctu", "Chengdu"),
		domestic("lzo", "Luzhou"),
		domestic("ybp", "Yibin"),
		domestic("mig", "Mianyang"),
		domestic("jzh", "Jiuzhaigou"),
		domestic("pzi", "Panzhihua"),
		domestic("dax", "Dazhou"),
		domestic("xic", "Xichang"),
		domestic("nao", "Nanchong"),
		domestic("gys", "Guangyuan"),
		domestic("kwe", "Guiyang"),
		domestic("zyi", "Zunyi"),
		domestic("ava", "Anshun"),
		domestic("ten", "Tongren"),
		domestic("acx", "Xingyi"),
		domestic("kmg", "Kunming"),
		domestic("ljg", "Lijiang"),
		domestic("jhg", "Xishuangbanna"),
		domestic("dlu", "Dali"),
		domestic("sym", "Pu'er", "puer"),
		domestic("bsd", "Baoshan"),
		domestic("lnj", "Lincang"),
		domestic("zat", "Zhaotong"),
		domestic("yua", "Yuanmou"),
		domestic("lum", "Mangshi"),
		domestic("dig", "Shangri-La", "shangrila", "diqing"),
		domestic("lxa", "Lhasa"),
		domestic("bpx", "Qamdo"),

		// Northwest China
		domestic("sia", "Xi'an", "xian"),
		domestic("xiy", "Xi'an Xianyang", "xianyang"),
		domestic("eny", "Yan'an", "yanan"),
		domestic("aka", "Ankang"),
		domestic("uyn", "Yulin"),
		domestic("hzg", "Hanzhong"),
		domestic("lhw", "Lanzhou"),
		domestic("dnh", "Dunhuang"),
		domestic("jgn", "Jiayuguan"),
		domestic("chw", "Jiuquan"),
		domestic("iqn", "Qingyang"),
		domestic("xnn", "Xining"),
		domestic("goq", "Golmud"),
		domestic("inc", "Yinchuan"),
		domestic("urc", "Urumqi"),
		domestic("khg", "Kashi", "kashgar"),
		domestic("yin", "Yining"),
		domestic("krl", "Korla"),
		domestic("aku", "Aksu"),
		domestic("htn", "Hotan"),
		domestic("aat", "Altay"),
		domestic("hmi", "Hami"),
		domestic("kry", "Karamay"),
		domestic("fyn", "Fuyun"),
		domestic("tcg", "Tacheng"),
		domestic("kca", "Kuqa"),
		domestic("iqm", "Qiemo"),

		// Hong Kong, Macau, Taiwan
		international("hkg", "Hong Kong"),
		international("mfm", "Macau", "macao"),
		international("tpe", "Taipei"),
		international("txg", "Taichung"),
		international("khh", "Kaohsiung"),

		// Japan and Korea
		international("tyo", "Tokyo"),
		international("nrt", "Tokyo Narita", "narita"),
		international("hnd", "Tokyo Haneda", "haneda"),
		international("osa", "Osaka"),
		international("ukb", "Kyoto"),
		international("kix", "Osaka Kansai", "kansai"),
		international("ngo", "Nagoya"),
		international("cts", "Sapporo"),
		international("fuk", "Fukuoka"),
		international("oka", "Okinawa"),
		international("sel", "Seoul"),
		international("icn", "Seoul Incheon", "incheon"),
		international("gmp", "Seoul Gimpo", "gimpo"),
		international("pus", "Busan"),
		international("cju", "Jeju"),

		// Southeast Asia
		international("bkk", "Bangkok"),
		international("dmk", "Bangkok Don Mueang", "donmueang"),
		international("sin", "Singapore"),
		international("kul", "Kuala Lumpur"),
		international("jkt", "Jakarta"),
		international("mnl", "Manila"),
		international("han", "Hanoi"),
		international("sgn", "Ho Chi Minh City", "hochiminh", "saigon"),
		international("hkt", "Phuket"),
		international("dps", "Bali", "denpasar"),

		// Europe
		international("lon", "London"),
		international("lhr", "London Heathrow", "heathrow"),
		international("lgw", "London Gatwick", "gatwick"),
		international("par", "Paris"),
		international("cdg", "Paris Charles de Gaulle", "charlesdegaulle"),
		international("ber", "Berlin"),
		international("rom", "Rome"),
		international("fco", "Rome Fiumicino", "fiumicino"),
		international("mad", "Madrid"),
		international("bcn", "Barcelona"),
		international("ams", "Amsterdam"),
		international("bru", "Brussels"),
		international("zrh", "Zurich"),
		international("vie", "Vienna"),
		international("mow", "Moscow"),
		international("fra", "Frankfurt"),
		international("muc", "Munich"),
		international("ist", "Istanbul"),

		// Americas
		international("nyc", "New York"),
		international("jfk", "New York JFK", "kennedy"),
		international("ewr", "New York Newark", "newark"),
		international("lax", "Los Angeles"),
		international("sfo", "San Francisco"),
		international("chi", "Chicago"),
		international("ord", "Chicago O'Hare", "ohare"),
		international("sea", "Seattle"),
		international("bos", "Boston"),
		international("was", "Washington"),
		international("yto", "Toronto"),
		international("yyz", "Toronto Pearson", "pearson"),
		international("yvr", "Vancouver"),
		international("mex", "Mexico City", "mexico"),
		international("shg", "Shungnak"),

		// Oceania
		international("syd", "Sydney"),
		international("mel", "Melbourne"),
		international("bne", "Brisbane"),
		international("akl", "Auckland"),

		// Middle East
		international("dxb", "Dubai"),
		international("auh", "Abu Dhabi"),
		international("doh", "Doha"),
		international("tlv", "Tel Aviv"),
	}
}
