package geo

// countryCoordinates maps IOC country codes to a representative point.
// Historic codes (URS, GDR, TCH, YUG...) point at their successor states.
var countryCoordinates = map[string]Coordinate{
	"AFG": {Lat: 33.939, Lon: 67.710},
	"AHO": {Lat: 12.178, Lon: 61.551},
	"ALG": {Lat: 28.034, Lon: 1.660},
	"ANZ": {Lat: 4.383, Lon: 18.657},
	"ARG": {Lat: -38.416, Lon: -63.617},
	"ARM": {Lat: 40.069, Lon: 45.038},
	"AUS": {Lat: -25.274, Lon: 133.775},
	"AUT": {Lat: 47.516, Lon: 14.550},
	"AZE": {Lat: 40.143, Lon: 47.577},
	"BAH": {Lat: 25.034, Lon: -77.396},
	"BAR": {Lat: 13.194, Lon: -59.543},
	"BDI": {Lat: -3.373, Lon: 29.919},
	"BEL": {Lat: 50.850, Lon: 4.352},
	"BER": {Lat: 32.308, Lon: -64.751},
	"BLR": {Lat: 53.900, Lon: 27.567},
	"BOH": {Lat: 48.020, Lon: 66.924},
	"BOT": {Lat: -22.328, Lon: 24.685},
	"BRA": {Lat: -14.235, Lon: -51.925},
	"BRN": {Lat: 4.535, Lon: 114.728},
	"BUL": {Lat: 42.734, Lon: 25.486},
	"BWI": {Lat: 17.190, Lon: -62.140},
	"CAN": {Lat: 56.130, Lon: -106.347},
	"CHI": {Lat: -33.449, Lon: -70.669},
	"CHN": {Lat: 35.862, Lon: 104.195},
	"CIV": {Lat: 7.540, Lon: -5.547},
	"CMR": {Lat: 3.848, Lon: 11.502},
	"COL": {Lat: 4.571, Lon: -74.297},
	"CRC": {Lat: 9.749, Lon: -83.753},
	"CRO": {Lat: 45.100, Lon: 15.200},
	"CUB": {Lat: 21.522, Lon: -77.781},
	"CYP": {Lat: 35.126, Lon: 33.430},
	"CZE": {Lat: 49.818, Lon: 15.473},
	"DEN": {Lat: 56.264, Lon: 9.502},
	"DJI": {Lat: 11.825, Lon: 42.590},
	"DOM": {Lat: 18.736, Lon: -70.163},
	"ECU": {Lat: -1.831, Lon: -78.183},
	"EGY": {Lat: 26.820, Lon: 30.803},
	"ERI": {Lat: 15.179, Lon: 39.782},
	"ESP": {Lat: 40.464, Lon: -3.749},
	"EST": {Lat: 58.595, Lon: 25.014},
	"ETH": {Lat: 9.145, Lon: 40.490},
	"EUA": {Lat: 37.090, Lon: -95.713},
	"EUN": {Lat: 54.526, Lon: 15.255},
	"FIN": {Lat: 61.924, Lon: 25.748},
	"FRA": {Lat: 46.603, Lon: 1.888},
	"FRG": {Lat: 51.166, Lon: 10.452},
	"GAB": {Lat: -0.804, Lon: 11.609},
	"GBR": {Lat: 55.378, Lon: -3.436},
	"GDR": {Lat: 51.166, Lon: 10.452},
	"GEO": {Lat: 42.315, Lon: 43.357},
	"GER": {Lat: 51.166, Lon: 10.452},
	"GHA": {Lat: 7.946, Lon: -1.023},
	"GRE": {Lat: 39.074, Lon: 21.824},
	"GRN": {Lat: 12.515, Lon: -86.221},
	"GUA": {Lat: 13.909, Lon: -90.231},
	"GUY": {Lat: 4.860, Lon: -58.930},
	"HAI": {Lat: 18.971, Lon: -72.285},
	"HKG": {Lat: 22.319, Lon: 114.169},
	"HUN": {Lat: 47.162, Lon: 19.503},
	"INA": {Lat: -0.789, Lon: 113.921},
	"IND": {Lat: 20.594, Lon: 78.963},
	"IOP": {Lat: 6.000, Lon: 100.000},
	"IRI": {Lat: 32.428, Lon: 53.688},
	"IRL": {Lat: 53.413, Lon: -8.244},
	"IRQ": {Lat: 33.223, Lon: 43.679},
	"ISL": {Lat: 64.963, Lon: -19.021},
	"ISR": {Lat: 31.046, Lon: 34.852},
	"ISV": {Lat: 18.336, Lon: -64.896},
	"ITA": {Lat: 41.872, Lon: 12.567},
	"JAM": {Lat: 18.110, Lon: -77.298},
	"JPN": {Lat: 36.205, Lon: 138.253},
	"KAZ": {Lat: 48.020, Lon: 66.924},
	"KEN": {Lat: -1.292, Lon: 36.822},
	"KGZ": {Lat: 41.204, Lon: 74.766},
	"KOR": {Lat: 35.908, Lon: 127.767},
	"KSA": {Lat: 23.886, Lon: 45.079},
	"KUW": {Lat: 29.376, Lon: 47.977},
	"LAT": {Lat: 56.880, Lon: 24.603},
	"LIB": {Lat: 33.855, Lon: 35.862},
	"LTU": {Lat: 55.169, Lon: 23.881},
	"LUX": {Lat: 49.612, Lon: 6.130},
	"MAR": {Lat: 31.792, Lon: -7.093},
	"MAS": {Lat: 4.211, Lon: 101.976},
	"MDA": {Lat: 47.412, Lon: 28.370},
	"MEX": {Lat: 23.634, Lon: -102.553},
	"MGL": {Lat: 46.863, Lon: 103.847},
	"MKD": {Lat: 41.609, Lon: 21.745},
	"MNE": {Lat: 42.709, Lon: 19.374},
	"MOZ": {Lat: -18.666, Lon: 35.530},
	"MRI": {Lat: -20.348, Lon: 57.552},
	"NAM": {Lat: -22.958, Lon: 18.490},
	"NED": {Lat: 52.133, Lon: 5.291},
	"NGR": {Lat: 9.082, Lon: 8.675},
	"NIG": {Lat: 17.608, Lon: 8.082},
	"NOR": {Lat: 60.472, Lon: 8.469},
	"NZL": {Lat: -40.901, Lon: 174.886},
	"PAK": {Lat: 30.375, Lon: 69.345},
	"PAN": {Lat: 8.538, Lon: -80.782},
	"PAR": {Lat: -23.443, Lon: -58.444},
	"PER": {Lat: -9.190, Lon: -75.015},
	"PHI": {Lat: 12.880, Lon: 121.774},
	"POL": {Lat: 51.919, Lon: 19.145},
	"POR": {Lat: 39.400, Lon: -8.225},
	"PRK": {Lat: 40.340, Lon: 127.510},
	"PUR": {Lat: 18.221, Lon: -66.590},
	"QAT": {Lat: 25.355, Lon: 51.184},
	"ROU": {Lat: 45.943, Lon: 24.967},
	"RSA": {Lat: -30.560, Lon: 22.938},
	"RU1": {Lat: 55.756, Lon: 37.618},
	"RUS": {Lat: 55.756, Lon: 37.618},
	"SCG": {Lat: 44.017, Lon: 21.006},
	"SEN": {Lat: 14.497, Lon: -14.452},
	"SGP": {Lat: 1.352, Lon: 103.820},
	"SIN": {Lat: 1.352, Lon: 103.820},
	"SLO": {Lat: 46.151, Lon: 14.996},
	"SRB": {Lat: 44.017, Lon: 21.006},
	"SRI": {Lat: 7.873, Lon: 80.772},
	"SUD": {Lat: 12.863, Lon: 30.218},
	"SUI": {Lat: 46.818, Lon: 8.228},
	"SUR": {Lat: 3.919, Lon: -56.028},
	"SVK": {Lat: 48.669, Lon: 19.699},
	"SWE": {Lat: 60.128, Lon: 18.644},
	"SYR": {Lat: 34.802, Lon: 38.997},
	"TAN": {Lat: -6.369, Lon: 34.889},
	"TCH": {Lat: 49.818, Lon: 15.473},
	"TGA": {Lat: -21.179, Lon: -175.198},
	"THA": {Lat: 15.870, Lon: 100.993},
	"TJK": {Lat: 38.861, Lon: 71.276},
	"TOG": {Lat: 7.447, Lon: 1.702},
	"TPE": {Lat: 25.033, Lon: 121.565},
	"TRI": {Lat: 10.692, Lon: -61.223},
	"TTO": {Lat: 10.692, Lon: -61.223},
	"TUN": {Lat: 33.887, Lon: 9.537},
	"TUR": {Lat: 38.964, Lon: 35.243},
	"UAE": {Lat: 23.424, Lon: 53.848},
	"UGA": {Lat: 1.373, Lon: 32.290},
	"UKR": {Lat: 48.379, Lon: 31.166},
	"URS": {Lat: 55.756, Lon: 37.618},
	"URU": {Lat: -32.965, Lon: -56.013},
	"USA": {Lat: 37.090, Lon: -95.713},
	"UZB": {Lat: 41.378, Lon: 64.585},
	"VEN": {Lat: 6.424, Lon: -66.590},
	"VIE": {Lat: 21.029, Lon: 105.854},
	"YUG": {Lat: 44.017, Lon: 21.006},
	"ZAM": {Lat: -13.134, Lon: 27.849},
	"ZIM": {Lat: -19.015, Lon: 29.155},
	"ZZX": {Lat: 0.000, Lon: 0.000},
}
