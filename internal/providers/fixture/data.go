package fixture

import "garu-data-service/internal/providers"

var sampleRows = []providers.RawStatRow{
	{PlayerID: 1628983, PlayerName: "Shai Gilgeous-Alexander", TeamID: 1610612760, TeamAbbreviation: "OKC", Age: 27, GamesPlayed: 76, Minutes: 34.2, Points: 32.7, Rebounds: 5.0, Assists: 6.4, Steals: 1.7, Blocks: 1.0, FGPct: 0.519, FG3Pct: 0.375, FTPct: 0.898},
	{PlayerID: 203999, PlayerName: "Nikola Jokic", TeamID: 1610612743, TeamAbbreviation: "DEN", Age: 30, GamesPlayed: 70, Minutes: 36.7, Points: 29.6, Rebounds: 12.7, Assists: 10.2, Steals: 1.8, Blocks: 0.6, FGPct: 0.576, FG3Pct: 0.417, FTPct: 0.800},
	{PlayerID: 203507, PlayerName: "Giannis Antetokounmpo", TeamID: 1610612749, TeamAbbreviation: "MIL", Age: 31, GamesPlayed: 67, Minutes: 34.2, Points: 30.4, Rebounds: 11.9, Assists: 6.5, Steals: 0.9, Blocks: 1.2, FGPct: 0.601, FG3Pct: 0.222, FTPct: 0.617},
	{PlayerID: 201939, PlayerName: "Stephen Curry", TeamID: 1610612744, TeamAbbreviation: "GSW", Age: 37, GamesPlayed: 70, Minutes: 32.2, Points: 24.5, Rebounds: 4.4, Assists: 6.0, Steals: 1.1, Blocks: 0.4, FGPct: 0.448, FG3Pct: 0.397, FTPct: 0.933},
	{PlayerID: 2544, PlayerName: "LeBron James", TeamID: 1610612747, TeamAbbreviation: "LAL", Age: 41, GamesPlayed: 70, Minutes: 34.9, Points: 24.4, Rebounds: 7.8, Assists: 8.2, Steals: 1.0, Blocks: 0.6, FGPct: 0.513, FG3Pct: 0.376, FTPct: 0.782},
	{PlayerID: 1628369, PlayerName: "Jayson Tatum", TeamID: 1610612738, TeamAbbreviation: "BOS", Age: 27, GamesPlayed: 72, Minutes: 36.4, Points: 26.8, Rebounds: 8.7, Assists: 6.0, Steals: 1.1, Blocks: 0.5, FGPct: 0.452, FG3Pct: 0.343, FTPct: 0.814},
	{PlayerID: 1641705, PlayerName: "Victor Wembanyama", TeamID: 1610612759, TeamAbbreviation: "SAS", Age: 22, GamesPlayed: 46, Minutes: 33.2, Points: 24.3, Rebounds: 11.0, Assists: 3.7, Steals: 1.1, Blocks: 3.8, FGPct: 0.476, FG3Pct: 0.352, FTPct: 0.836},
	{PlayerID: 201142, PlayerName: "Kevin Durant", TeamID: 1610612745, TeamAbbreviation: "HOU", Age: 37, GamesPlayed: 62, Minutes: 36.5, Points: 26.6, Rebounds: 6.0, Assists: 4.2, Steals: 0.8, Blocks: 1.2, FGPct: 0.527, FG3Pct: 0.430, FTPct: 0.839},
	{PlayerID: 202699, PlayerName: "Tobias Harris", TeamID: 1610612765, TeamAbbreviation: "DET", Age: 33, GamesPlayed: 68, Minutes: 28.6, Points: 13.7, Rebounds: 5.9, Assists: 2.2, Steals: 0.9, Blocks: 0.6, FGPct: 0.475, FG3Pct: 0.347, FTPct: 0.867},
	{PlayerID: 202710, PlayerName: "Jimmy Butler", TeamID: 1610612744, TeamAbbreviation: "GSW", Age: 36, GamesPlayed: 55, Minutes: 31.0, Points: 17.5, Rebounds: 5.4, Assists: 5.6, Steals: 1.4, Blocks: 0.3, FGPct: 0.470, FG3Pct: 0.230, FTPct: 0.830},
	{PlayerID: 201566, PlayerName: "Russell Westbrook", TeamID: 1610612743, TeamAbbreviation: "DEN", Age: 37, GamesPlayed: 75, Minutes: 27.9, Points: 13.3, Rebounds: 4.9, Assists: 6.1, Steals: 1.4, Blocks: 0.5, FGPct: 0.449, FG3Pct: 0.323, FTPct: 0.661},
	{PlayerID: 203114, PlayerName: "Khris Middleton", TeamID: 1610612764, TeamAbbreviation: "WAS", Age: 34, GamesPlayed: 45, Minutes: 23.0, Points: 12.3, Rebounds: 4.0, Assists: 4.1, Steals: 0.9, Blocks: 0.2, FGPct: 0.447, FG3Pct: 0.368, FTPct: 0.890},
	{PlayerID: 1627742, PlayerName: "Brandon Ingram", TeamID: 1610612761, TeamAbbreviation: "TOR", Age: 28, GamesPlayed: 40, Minutes: 34.1, Points: 22.2, Rebounds: 5.6, Assists: 5.2, Steals: 0.8, Blocks: 0.6, FGPct: 0.465, FG3Pct: 0.374, FTPct: 0.847},
	{PlayerID: 1630178, PlayerName: "Tyrese Maxey", TeamID: 1610612755, TeamAbbreviation: "PHI", Age: 25, GamesPlayed: 52, Minutes: 37.7, Points: 26.3, Rebounds: 3.3, Assists: 6.1, Steals: 1.8, Blocks: 0.4, FGPct: 0.437, FG3Pct: 0.337, FTPct: 0.879},
	{PlayerID: 1629636, PlayerName: "Darius Garland", TeamID: 1610612739, TeamAbbreviation: "CLE", Age: 25, GamesPlayed: 75, Minutes: 30.7, Points: 20.6, Rebounds: 2.9, Assists: 6.7, Steals: 1.2, Blocks: 0.1, FGPct: 0.472, FG3Pct: 0.401, FTPct: 0.875},
	{PlayerID: 1628386, PlayerName: "Jarrett Allen", TeamID: 1610612739, TeamAbbreviation: "CLE", Age: 27, GamesPlayed: 82, Minutes: 28.0, Points: 13.5, Rebounds: 9.7, Assists: 1.9, Steals: 0.9, Blocks: 0.9, FGPct: 0.706, FG3Pct: 0, FTPct: 0.677},
	{PlayerID: 1630567, PlayerName: "Scottie Barnes", TeamID: 1610612761, TeamAbbreviation: "TOR", Age: 24, GamesPlayed: 65, Minutes: 34.8, Points: 19.3, Rebounds: 7.7, Assists: 5.8, Steals: 1.4, Blocks: 1.0, FGPct: 0.443, FG3Pct: 0.273, FTPct: 0.771},
	{PlayerID: 1631094, PlayerName: "Paolo Banchero", TeamID: 1610612753, TeamAbbreviation: "ORL", Age: 23, GamesPlayed: 46, Minutes: 34.9, Points: 25.9, Rebounds: 7.5, Assists: 4.8, Steals: 0.7, Blocks: 0.5, FGPct: 0.452, FG3Pct: 0.318, FTPct: 0.725},
	{PlayerID: 1629027, PlayerName: "Trae Young", TeamID: 1610612737, TeamAbbreviation: "ATL", Age: 27, GamesPlayed: 76, Minutes: 36.0, Points: 24.2, Rebounds: 3.1, Assists: 11.6, Steals: 1.2, Blocks: 0.2, FGPct: 0.411, FG3Pct: 0.340, FTPct: 0.875},
	{PlayerID: 1627832, PlayerName: "Fred VanVleet", TeamID: 1610612745, TeamAbbreviation: "HOU", Age: 31, GamesPlayed: 60, Minutes: 35.2, Points: 14.1, Rebounds: 3.7, Assists: 5.6, Steals: 1.6, Blocks: 0.5, FGPct: 0.378, FG3Pct: 0.345, FTPct: 0.901},
	{PlayerID: 1641708, PlayerName: "Amen Thompson", TeamID: 1610612745, TeamAbbreviation: "HOU", Age: 22, GamesPlayed: 73, Minutes: 33.2, Points: 14.1, Rebounds: 8.2, Assists: 3.8, Steals: 1.4, Blocks: 1.3, FGPct: 0.557, FG3Pct: 0.162, FTPct: 0.676},
	{PlayerID: 1629630, PlayerName: "Ja Morant", TeamID: 1610612763, TeamAbbreviation: "MEM", Age: 26, GamesPlayed: 50, Minutes: 28.9, Points: 23.2, Rebounds: 4.1, Assists: 7.3, Steals: 1.2, Blocks: 0.3, FGPct: 0.467, FG3Pct: 0.308, FTPct: 0.818},
	{PlayerID: 1626157, PlayerName: "Karl-Anthony Towns", TeamID: 1610612752, TeamAbbreviation: "NYK", Age: 30, GamesPlayed: 72, Minutes: 35.0, Points: 24.4, Rebounds: 12.8, Assists: 3.1, Steals: 1.0, Blocks: 0.7, FGPct: 0.526, FG3Pct: 0.420, FTPct: 0.829},
	{PlayerID: 1630596, PlayerName: "Evan Mobley", TeamID: 1610612739, TeamAbbreviation: "CLE", Age: 24, GamesPlayed: 71, Minutes: 30.5, Points: 18.5, Rebounds: 9.3, Assists: 3.2, Steals: 0.9, Blocks: 1.6, FGPct: 0.557, FG3Pct: 0.370, FTPct: 0.715},
	{PlayerID: 1642000, PlayerName: "Free Agent Rookie", TeamID: 0, TeamAbbreviation: "", Age: 20, GamesPlayed: 3, Minutes: 6.1, Points: 1.3, Rebounds: 1.0, Assists: 0.3, Steals: 0, Blocks: 0, FGPct: 0.25, FG3Pct: 0, FTPct: 0.5},
}

var samplePositions = map[int64]string{
	1628983: "G",
	203999:  "C",
	203507:  "F",
	201939:  "G",
	2544:    "F",
	1628369: "F-G",
	1641705: "F-C",
	201142:  "F",
	202699:  "F",
	202710:  "F",
	201566:  "G",
	203114:  "F",
	1627742: "F",
	1630178: "G",
	1629636: "G",
	1628386: "C",
	1630567: "F",
	1631094: "F",
	1629027: "G",
	1627832: "G",
	1641708: "G-F",
	1629630: "G",
	1626157: "C-F",
	// 1630596 and 1642000 are intentionally missing so the stats-only ladder applies.
}

var sampleCareers = map[int64][]providers.CareerRow{
	201142: {
		{Season: "2007-08", TeamID: 0, TeamAbbreviation: "SEA"},
		{Season: "2008-09", TeamID: 1610612760, TeamAbbreviation: "OKC"},
		{Season: "2016-17", TeamID: 1610612744, TeamAbbreviation: "GSW"},
		{Season: "2019-20", TeamID: 1610612751, TeamAbbreviation: "BKN"},
		{Season: "2022-23", TeamID: 0, TeamAbbreviation: "TOT"},
		{Season: "2022-23", TeamID: 1610612751, TeamAbbreviation: "BKN"},
		{Season: "2022-23", TeamID: 1610612756, TeamAbbreviation: "PHX"},
		{Season: "2025-26", TeamID: 1610612745, TeamAbbreviation: "HOU"},
	},
	2544: {
		{Season: "2003-04", TeamID: 1610612739, TeamAbbreviation: "CLE"},
		{Season: "2010-11", TeamID: 1610612748, TeamAbbreviation: "MIA"},
		{Season: "2014-15", TeamID: 1610612739, TeamAbbreviation: "CLE"},
		{Season: "2018-19", TeamID: 1610612747, TeamAbbreviation: "LAL"},
	},
	201566: {
		{Season: "2008-09", TeamID: 1610612760, TeamAbbreviation: "OKC"},
		{Season: "2019-20", TeamID: 1610612745, TeamAbbreviation: "HOU"},
		{Season: "2020-21", TeamID: 1610612764, TeamAbbreviation: "WAS"},
		{Season: "2021-22", TeamID: 1610612747, TeamAbbreviation: "LAL"},
		{Season: "2022-23", TeamID: 0, TeamAbbreviation: "TOT"},
		{Season: "2022-23", TeamID: 1610612747, TeamAbbreviation: "LAL"},
		{Season: "2022-23", TeamID: 1610612746, TeamAbbreviation: "LAC"},
		{Season: "2024-25", TeamID: 1610612743, TeamAbbreviation: "DEN"},
	},
	202710: {
		{Season: "2011-12", TeamID: 1610612741, TeamAbbreviation: "CHI"},
		{Season: "2017-18", TeamID: 1610612750, TeamAbbreviation: "MIN"},
		{Season: "2018-19", TeamID: 0, TeamAbbreviation: "TOT"},
		{Season: "2018-19", TeamID: 1610612750, TeamAbbreviation: "MIN"},
		{Season: "2018-19", TeamID: 1610612755, TeamAbbreviation: "PHI"},
		{Season: "2019-20", TeamID: 1610612748, TeamAbbreviation: "MIA"},
		{Season: "2024-25", TeamID: 0, TeamAbbreviation: "TOT"},
		{Season: "2024-25", TeamID: 1610612748, TeamAbbreviation: "MIA"},
		{Season: "2024-25", TeamID: 1610612744, TeamAbbreviation: "GSW"},
	},
	202699: {
		{Season: "2011-12", TeamID: 1610612749, TeamAbbreviation: "MIL"},
		{Season: "2012-13", TeamID: 0, TeamAbbreviation: "TOT"},
		{Season: "2012-13", TeamID: 1610612749, TeamAbbreviation: "MIL"},
		{Season: "2012-13", TeamID: 1610612753, TeamAbbreviation: "ORL"},
		{Season: "2015-16", TeamID: 1610612765, TeamAbbreviation: "DET"},
		{Season: "2017-18", TeamID: 1610612746, TeamAbbreviation: "LAC"},
		{Season: "2018-19", TeamID: 1610612755, TeamAbbreviation: "PHI"},
		{Season: "2024-25", TeamID: 1610612765, TeamAbbreviation: "DET"},
	},
	201939: {
		{Season: "2009-10", TeamID: 1610612744, TeamAbbreviation: "GSW"},
		{Season: "2025-26", TeamID: 1610612744, TeamAbbreviation: "GSW"},
	},
	203114: {
		{Season: "2012-13", TeamID: 1610612765, TeamAbbreviation: "DET"},
		{Season: "2013-14", TeamID: 1610612749, TeamAbbreviation: "MIL"},
		{Season: "2024-25", TeamID: 0, TeamAbbreviation: "TOT"},
		{Season: "2024-25", TeamID: 1610612749, TeamAbbreviation: "MIL"},
		{Season: "2024-25", TeamID: 1610612764, TeamAbbreviation: "WAS"},
	},
	1627832: {
		{Season: "2016-17", TeamID: 1610612761, TeamAbbreviation: "TOR"},
		{Season: "2023-24", TeamID: 1610612745, TeamAbbreviation: "HOU"},
	},
}
