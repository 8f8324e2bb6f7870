package charmap

// Runes is the default table: Latin letters to runes, digits to themselves
// (lowercase) or to custom symbols (uppercase). Sources are the Windows
// virtual-key characters, so letters are listed in uppercase.
var Runes = []Entry{
	{'A', 'ᚨ', 'ᚪ'},
	{'B', 'ᛒ', 'ᛔ'},
	{'C', 'ᚲ', 'ᛈ'},
	{'D', 'ᚦ', 'ᚣ'},
	{'E', 'ᛅ', 'ᚯ'},
	{'F', 'ᚠ', 'ᚡ'},
	{'G', 'ᛞ', 'ᛥ'},
	{'H', 'ᚺ', 'ᚻ'},
	{'I', 'ᛁ', 'ᛂ'},
	{'J', 'ᚴ', 'ᚵ'},
	{'K', 'ᛘ', 'ᛯ'},
	{'L', 'ᛐ', 'ᛚ'},
	{'M', 'ᛖ', 'ᛗ'},
	{'N', 'ᚾ', 'ᚬ'},
	{'O', 'ᛜ', 'ᛟ'},
	{'P', 'ᛩ', 'ᚹ'},
	{'Q', 'ᛶ', 'ᚿ'},
	{'R', 'ᛃ', 'ᚱ'},
	{'S', 'ᛋ', 'ᛊ'},
	{'T', 'ᛄ', 'ᛏ'},
	{'U', 'ᚢ', 'ᚤ'},
	{'V', 'ᛡ', 'ᛤ'},
	{'W', 'ᚳ', 'ᛠ'},
	{'X', '×', 'ᚷ'},
	{'Y', 'ᛣ', 'ᛉ'},
	{'Z', 'ᛇ', 'ᛢ'},
	{'1', '1', '\U0001690D'},
	{'2', '2', '♅'},
	{'3', '3', '↟'},
	{'4', '4', '↡'},
	{'5', '5', '↠'},
	{'6', '6', '↞'},
	{'7', '7', '\U00012310'},
	{'8', '8', '\U00016913'},
	{'9', '9', '☽'},
	{'0', '0', '\U0001F548'},
}
