package seed

var bookTitles = []string{
	"The Silent Echo",
	"Midnight Chronicles",
	"Shadows of Tomorrow",
	"The Last Kingdom",
	"Whispers in the Wind",
	"The Forgotten Path",
	"Beyond the Horizon",
	"The Crystal Garden",
	"Echoes of Eternity",
	"The Quantum Paradox",
	"Rivers of Time",
	"The Starlight Prophecy",
	"Dancing with Dragons",
	"The Secret Library",
	"Voices of the Past",
	"The Crimson Tide",
	"Tales of the Ancients",
	"The Infinite Loop",
	"The Golden Compass",
	"The Storm Weavers",
	"The Emerald City",
	"Dreams of Fire",
	"The Silver Thread",
	"The Lost Archipelago",
	"The Wandering Stars",
	"The Phoenix Rising",
	"The Moonlit Path",
	"The Clockwork Heart",
	"The Shadow Realm",
	"The Eternal Flame",
	"The Hidden Valley",
	"The Sapphire Sea",
	"The Broken Crown",
	"The Ancient Code",
	"The Mystic Portal",
	"The Frozen Kingdom",
	"The Desert Bloom",
	"The Midnight Garden",
	"The Celestial Journey",
	"The Forgotten Empire",
}

var bookAuthors = []string{
	"Emma Blackwood",
	"James Morrison",
	"Sarah Chen",
	"Michael Anderson",
	"Olivia Roberts",
	"David Martinez",
	"Emily Thompson",
	"Christopher Lee",
	"Sophia Williams",
	"Daniel Brown",
	"Isabella Garcia",
	"Matthew Davis",
	"Ava Rodriguez",
	"Joshua Wilson",
	"Mia Johnson",
	"Andrew Taylor",
	"Charlotte Moore",
	"Ryan Jackson",
	"Amelia White",
	"Nathan Harris",
}

var genres = []string{
	"Fantasy",
	"Science Fiction",
	"Mystery",
	"Thriller",
	"Romance",
	"Historical Fiction",
	"Adventure",
	"Horror",
	"Contemporary Fiction",
	"Literary Fiction",
	"Dystopian",
	"Magical Realism",
	"Crime",
	"Young Adult",
	"Urban Fantasy",
}

var summaries = []string{
	"A captivating tale of courage and redemption in a world on the brink of collapse.",
	"An epic journey through time and space that will leave you breathless.",
	"A gripping story of love and betrayal set against a backdrop of political intrigue.",
	"A haunting exploration of what it means to be human in an increasingly digital world.",
	"An unforgettable adventure that spans continents and generations.",
	"A mesmerizing blend of magic and reality that challenges our perception of truth.",
	"A powerful narrative about family, sacrifice, and the choices that define us.",
	"A thrilling page-turner that keeps you guessing until the very end.",
	"A beautiful meditation on loss, hope, and the resilience of the human spirit.",
	"An imaginative tale that pushes the boundaries of what's possible.",
	"A thought-provoking story about identity and belonging in a fractured world.",
	"A richly detailed saga of power, ambition, and the price of greatness.",
	"An intimate portrait of ordinary people facing extraordinary circumstances.",
	"A spine-tingling mystery that will keep you up all night.",
	"A lyrical exploration of dreams, destiny, and the nature of reality.",
	"A compelling story of survival against impossible odds.",
	"A sweeping epic that brings history to life with vivid detail and emotion.",
	"A dark and twisted tale that explores the shadows of the human psyche.",
	"A heartwarming story about friendship, forgiveness, and second chances.",
	"A mind-bending adventure through alternate realities and parallel worlds.",
}

// review titles overlap the generated books so reviews usually point at something
var reviewedTitles = []string{
	"The Silent Echo",
	"Midnight Chronicles",
	"Shadows of Tomorrow",
	"The Last Kingdom",
	"Whispers in the Wind",
	"The Forgotten Path",
	"Beyond the Horizon",
	"The Crystal Garden",
	"Echoes of Eternity",
	"The Quantum Paradox",
	"Rivers of Time",
	"The Starlight Prophecy",
	"Dancing with Dragons",
	"The Secret Library",
	"Voices of the Past",
	"The Crimson Tide",
	"Tales of the Ancients",
	"The Infinite Loop",
	"Atomic Habits",
	"The Golden Compass",
}

var reviewers = []string{
	"Sarah Mitchell",
	"David Chen",
	"Emily Rodriguez",
	"Michael Johnson",
	"Jessica Taylor",
	"Robert Anderson",
	"Amanda White",
	"Christopher Lee",
	"Laura Martinez",
	"Daniel Brown",
	"Sophia Wilson",
	"James Davis",
	"Rachel Thompson",
	"Kevin Moore",
	"Lisa Garcia",
	"Matthew Jackson",
	"Nicole Harris",
	"Ryan Clark",
	"Jennifer Lewis",
	"Brian Walker",
}

var positiveComments = []string{
	"Absolutely loved this book! Couldn't put it down.",
	"A masterpiece of storytelling. Highly recommended!",
	"One of the best books I've read this year.",
	"Beautifully written and deeply moving.",
	"The author's imagination is boundless. Amazing read!",
	"This book changed my perspective on so many things.",
	"Captivating from start to finish.",
	"An instant classic that will stand the test of time.",
	"The characters feel so real and relatable.",
	"A thrilling ride that kept me guessing until the end.",
}

var neutralComments = []string{
	"A decent read with some interesting moments.",
	"It was okay, but not what I expected.",
	"Some parts were great, others felt a bit slow.",
	"Worth reading if you have the time.",
	"Not bad, but could have been better.",
	"Has potential but falls short in some areas.",
	"An average book with a few standout scenes.",
	"It's alright for what it is.",
}

var negativeComments = []string{
	"Unfortunately, this book didn't live up to the hype.",
	"The pacing was too slow for my taste.",
	"I found the characters underdeveloped.",
	"Not my cup of tea, but others might enjoy it.",
	"Struggled to finish this one.",
	"The plot felt predictable and uninspired.",
}

// ratingWeights[i] is the relative weight of an (i+1)-star rating
var ratingWeights = [5]int{2, 5, 10, 20, 30}

type publisherSample struct {
	name    string
	country string
	founded int
	website string
}

var publisherSamples = []publisherSample{
	{"Penguin Random House", "United States", 2013, "https://www.penguinrandomhouse.com"},
	{"HarperCollins", "United States", 1989, "https://www.harpercollins.com"},
	{"Simon & Schuster", "United States", 1924, "https://www.simonandschuster.com"},
	{"Macmillan Publishers", "United Kingdom", 1843, "https://www.macmillan.com"},
	{"Hachette Book Group", "France", 1826, "https://www.hachettebookgroup.com"},
	{"Scholastic Corporation", "United States", 1920, "https://www.scholastic.com"},
	{"Oxford University Press", "United Kingdom", 1586, "https://global.oup.com"},
	{"Cambridge University Press", "United Kingdom", 1534, "https://www.cambridge.org"},
	{"Bloomsbury Publishing", "United Kingdom", 1986, "https://www.bloomsbury.com"},
	{"Pearson Education", "United Kingdom", 1844, "https://www.pearson.com"},
	{"Wiley", "United States", 1807, "https://www.wiley.com"},
	{"Springer Nature", "Germany", 2015, "https://www.springernature.com"},
	{"Kodansha", "Japan", 1909, "https://www.kodansha.co.jp"},
	{"Shueisha", "Japan", 1925, "https://www.shueisha.co.jp"},
	{"Gallimard", "France", 1911, "https://www.gallimard.fr"},
	{"Planeta", "Spain", 1949, "https://www.planetadelibros.com"},
	{"Bonnier Books", "Sweden", 1837, "https://www.bonnierbooks.com"},
	{"Companhia das Letras", "Brazil", 1986, "https://www.companhiadasletras.com.br"},
	{"Tor Books", "United States", 1980, "https://www.tor.com"},
	{"Vintage Books", "United States", 1954, "https://www.penguinrandomhouse.com/publishers/vintage-books"},
	{"Faber and Faber", "United Kingdom", 1929, "https://www.faber.co.uk"},
	{"Knopf Doubleday", "United States", 1915, "https://knopfdoubleday.com"},
	{"Random House", "United States", 1927, "https://www.penguinrandomhouse.com"},
	{"Penguin Books", "United Kingdom", 1935, "https://www.penguin.co.uk"},
	{"Little, Brown and Company", "United States", 1837, "https://www.littlebrown.com"},
}
