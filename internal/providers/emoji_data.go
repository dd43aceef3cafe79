package providers

type emojiEntry struct {
	glyph string
	group string
	name  string
}

// emojiTable is the built-in emoji set, grouped like the Unicode CLDR
// annotations.
var emojiTable = []emojiEntry{
	{"😀", "Smileys & Emotion", "grinning face"},
	{"😃", "Smileys & Emotion", "grinning face with big eyes"},
	{"😄", "Smileys & Emotion", "grinning face with smiling eyes"},
	{"😁", "Smileys & Emotion", "beaming face with smiling eyes"},
	{"😆", "Smileys & Emotion", "grinning squinting face"},
	{"😅", "Smileys & Emotion", "grinning face with sweat"},
	{"🤣", "Smileys & Emotion", "rolling on the floor laughing"},
	{"😂", "Smileys & Emotion", "face with tears of joy"},
	{"🙂", "Smileys & Emotion", "slightly smiling face"},
	{"😉", "Smileys & Emotion", "winking face"},
	{"😊", "Smileys & Emotion", "smiling face with smiling eyes"},
	{"😍", "Smileys & Emotion", "smiling face with heart-eyes"},
	{"😘", "Smileys & Emotion", "face blowing a kiss"},
	{"😋", "Smileys & Emotion", "face savoring food"},
	{"😜", "Smileys & Emotion", "winking face with tongue"},
	{"🤔", "Smileys & Emotion", "thinking face"},
	{"🤨", "Smileys & Emotion", "face with raised eyebrow"},
	{"😐", "Smileys & Emotion", "neutral face"},
	{"😴", "Smileys & Emotion", "sleeping face"},
	{"😷", "Smileys & Emotion", "face with medical mask"},
	{"🤒", "Smileys & Emotion", "face with thermometer"},
	{"🥳", "Smileys & Emotion", "partying face"},
	{"😎", "Smileys & Emotion", "smiling face with sunglasses"},
	{"😢", "Smileys & Emotion", "crying face"},
	{"😭", "Smileys & Emotion", "loudly crying face"},
	{"😡", "Smileys & Emotion", "enraged face"},
	{"🤯", "Smileys & Emotion", "exploding head"},
	{"😱", "Smileys & Emotion", "face screaming in fear"},
	{"🙄", "Smileys & Emotion", "face with rolling eyes"},
	{"😬", "Smileys & Emotion", "grimacing face"},
	{"🤗", "Smileys & Emotion", "smiling face with open hands"},
	{"🤫", "Smileys & Emotion", "shushing face"},
	{"🤡", "Smileys & Emotion", "clown face"},
	{"💀", "Smileys & Emotion", "skull"},
	{"❤️", "Smileys & Emotion", "red heart"},
	{"💔", "Smileys & Emotion", "broken heart"},
	{"💯", "Smileys & Emotion", "hundred points"},
	{"💥", "Smileys & Emotion", "collision"},
	{"👍", "People & Body", "thumbs up"},
	{"👎", "People & Body", "thumbs down"},
	{"👏", "People & Body", "clapping hands"},
	{"🙏", "People & Body", "folded hands"},
	{"👋", "People & Body", "waving hand"},
	{"✌️", "People & Body", "victory hand"},
	{"🤞", "People & Body", "crossed fingers"},
	{"💪", "People & Body", "flexed biceps"},
	{"🤝", "People & Body", "handshake"},
	{"✍️", "People & Body", "writing hand"},
	{"👀", "People & Body", "eyes"},
	{"🧠", "People & Body", "brain"},
	{"🐶", "Animals & Nature", "dog face"},
	{"🐱", "Animals & Nature", "cat face"},
	{"🐭", "Animals & Nature", "mouse face"},
	{"🦊", "Animals & Nature", "fox"},
	{"🐻", "Animals & Nature", "bear"},
	{"🐼", "Animals & Nature", "panda"},
	{"🦁", "Animals & Nature", "lion"},
	{"🐸", "Animals & Nature", "frog"},
	{"🐢", "Animals & Nature", "turtle"},
	{"🦀", "Animals & Nature", "crab"},
	{"🐙", "Animals & Nature", "octopus"},
	{"🦉", "Animals & Nature", "owl"},
	{"🌲", "Animals & Nature", "evergreen tree"},
	{"🌸", "Animals & Nature", "cherry blossom"},
	{"🌻", "Animals & Nature", "sunflower"},
	{"🔥", "Animals & Nature", "fire"},
	{"⭐", "Animals & Nature", "star"},
	{"🌙", "Animals & Nature", "crescent moon"},
	{"☀️", "Animals & Nature", "sun"},
	{"🌧️", "Animals & Nature", "cloud with rain"},
	{"❄️", "Animals & Nature", "snowflake"},
	{"🌊", "Animals & Nature", "water wave"},
	{"🍕", "Food & Drink", "pizza"},
	{"🍔", "Food & Drink", "hamburger"},
	{"🍟", "Food & Drink", "french fries"},
	{"🌮", "Food & Drink", "taco"},
	{"🍣", "Food & Drink", "sushi"},
	{"🍜", "Food & Drink", "steaming bowl"},
	{"🍎", "Food & Drink", "red apple"},
	{"🍌", "Food & Drink", "banana"},
	{"🍓", "Food & Drink", "strawberry"},
	{"🥑", "Food & Drink", "avocado"},
	{"☕", "Food & Drink", "hot beverage"},
	{"🍺", "Food & Drink", "beer mug"},
	{"🍷", "Food & Drink", "wine glass"},
	{"🎂", "Food & Drink", "birthday cake"},
	{"⚽", "Activities", "soccer ball"},
	{"🏀", "Activities", "basketball"},
	{"🎾", "Activities", "tennis"},
	{"🎮", "Activities", "video game"},
	{"🎲", "Activities", "game die"},
	{"🎸", "Activities", "guitar"},
	{"🎹", "Activities", "musical keyboard"},
	{"🎤", "Activities", "microphone"},
	{"🎧", "Activities", "headphone"},
	{"🎨", "Activities", "artist palette"},
	{"🏆", "Activities", "trophy"},
	{"🎯", "Activities", "bullseye"},
	{"🚗", "Travel & Places", "automobile"},
	{"🚕", "Travel & Places", "taxi"},
	{"🚌", "Travel & Places", "bus"},
	{"🚲", "Travel & Places", "bicycle"},
	{"✈️", "Travel & Places", "airplane"},
	{"🚀", "Travel & Places", "rocket"},
	{"🚂", "Travel & Places", "locomotive"},
	{"⛵", "Travel & Places", "sailboat"},
	{"🗺️", "Travel & Places", "world map"},
	{"🏠", "Travel & Places", "house"},
	{"🏢", "Travel & Places", "office building"},
	{"🌍", "Travel & Places", "globe showing Europe-Africa"},
	{"💻", "Objects", "laptop"},
	{"🖥️", "Objects", "desktop computer"},
	{"⌨️", "Objects", "keyboard"},
	{"🖱️", "Objects", "computer mouse"},
	{"📱", "Objects", "mobile phone"},
	{"📷", "Objects", "camera"},
	{"🔋", "Objects", "battery"},
	{"🔌", "Objects", "electric plug"},
	{"💡", "Objects", "light bulb"},
	{"🔑", "Objects", "key"},
	{"🔒", "Objects", "locked"},
	{"🔨", "Objects", "hammer"},
	{"🔧", "Objects", "wrench"},
	{"📦", "Objects", "package"},
	{"📖", "Objects", "open book"},
	{"📝", "Objects", "memo"},
	{"✏️", "Objects", "pencil"},
	{"📌", "Objects", "pushpin"},
	{"📎", "Objects", "paperclip"},
	{"✂️", "Objects", "scissors"},
	{"🗑️", "Objects", "wastebasket"},
	{"⏰", "Objects", "alarm clock"},
	{"⌛", "Objects", "hourglass done"},
	{"💰", "Objects", "money bag"},
	{"✅", "Symbols", "check mark button"},
	{"❌", "Symbols", "cross mark"},
	{"❓", "Symbols", "red question mark"},
	{"❗", "Symbols", "red exclamation mark"},
	{"⚠️", "Symbols", "warning"},
	{"♻️", "Symbols", "recycling symbol"},
	{"🔁", "Symbols", "repeat button"},
	{"➕", "Symbols", "plus"},
	{"➖", "Symbols", "minus"},
	{"➡️", "Symbols", "right arrow"},
	{"⬅️", "Symbols", "left arrow"},
	{"⬆️", "Symbols", "up arrow"},
	{"⬇️", "Symbols", "down arrow"},
	{"🚩", "Flags", "triangular flag"},
	{"🏁", "Flags", "chequered flag"},
	{"🏳️", "Flags", "white flag"},
	{"🏴", "Flags", "black flag"},
}
