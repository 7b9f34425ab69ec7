package naming

var verbs = []string{
	"accept", "account", "achieve", "acquire", "adapt", "add", "adjust", "admire", "admit", "adopt",
	"advance", "advise", "afford", "agree", "aim", "alert", "align", "allow", "alter", "amaze",
	"amuse", "analyse", "announce", "annoy", "answer", "anticipate", "apologise", "appear", "applaud", "apply",
	"appoint", "approach", "approve", "argue", "arise", "arrange", "arrive", "ask", "assemble", "assert",
	"assess", "assign", "assist", "assume", "assure", "attach", "attempt", "attend", "attract", "audit",
	"avoid", "awake", "award", "bake", "balance", "ban", "bang", "bank", "bargain", "bat",
	"bathe", "battle", "beam", "bear", "beat", "become", "beg", "begin", "behave", "believe",
	"belong", "bend", "bet", "bid", "bind", "bite", "blame", "blast", "blend", "bless",
	"blink", "block", "bloom", "blossom", "blot", "blow", "blush", "board", "boast", "boil",
	"bolt", "book", "boost", "bore", "borrow", "bounce", "bow", "box", "brace", "brake",
	"branch", "brand", "breathe", "breed", "brew", "bridge", "brief", "brighten", "bring", "broadcast",
	"browse", "brush", "bubble", "buckle", "budget", "build", "bump", "bundle", "burn", "burst",
	"bury", "buzz", "calculate", "call", "calm", "camp", "cancel", "capture", "care", "carry",
	"carve", "cast", "catch", "cause", "celebrate", "challenge", "change", "charge", "charm", "chart",
	"chase", "chat", "check", "cheer", "chew", "chip", "choose", "chop", "circle", "claim",
	"clap", "clarify", "classify", "clean", "clear", "climb", "cling", "clip", "close", "coach",
	"coil", "collapse", "collect", "colour", "comb", "combine", "comfort", "command", "comment", "commit",
	"communicate", "compare", "compete", "compile", "complain", "complete", "compose", "compute", "conceal", "concentrate",
	"concern", "conclude", "conduct", "confess", "confirm", "confuse", "connect", "conquer", "consider", "consist",
	"construct", "consult", "contain", "continue", "contract", "control", "convert", "convince", "cook", "coordinate",
	"copy", "correct", "cough", "count", "cover", "crack", "craft", "crash", "crawl", "create",
	"creep", "cross", "crouch", "crush", "cry", "cultivate", "cure", "curl", "curve", "cycle",
	"damage", "dance", "dare", "dash", "deal", "debate", "decay", "decide", "declare", "decorate",
	"decrease", "dedicate", "defeat", "defend", "define", "delay", "delegate", "delete", "deliver", "demand",
	"demonstrate", "deny", "depend", "deposit", "describe", "deserve", "design", "desire", "destroy", "detect",
	"determine", "develop", "devise", "diagnose", "dig", "direct", "disagree", "disappear", "discover", "discuss",
	"dislike", "dispense", "display", "dissect", "distribute", "dive", "divide", "dodge", "donate", "double",
	"doubt", "drag", "drain", "dramatise", "draw", "dream", "dress", "drift", "drill", "drink",
	"drip", "drive", "drop", "drum", "dry", "dust", "dwell", "earn", "ease", "eat",
	"echo", "edit", "educate", "elect", "eliminate", "embrace", "emerge", "employ", "empty", "enable",
	"encourage", "end", "endorse", "engineer", "enhance", "enjoy", "enlist", "enrich", "ensure", "enter",
	"entertain", "escape", "establish", "estimate", "evaluate", "examine", "exceed", "exchange", "excite", "excuse",
	"execute", "exercise", "exhibit", "exist", "expand", "expect", "explain", "explode", "explore", "export",
	"expose", "express", "extend", "extract", "face", "fade", "fail", "fancy", "fasten", "fax",
	"fear", "feed", "feel", "fence", "fetch", "fight", "file", "fill", "film", "finance",
	"find", "fit", "fix", "flap", "flash", "flee", "flick", "fling", "float", "flood",
	"flow", "flower", "fly", "fold", "follow", "fool", "force", "forecast", "forget", "forgive",
	"form", "formulate", "found", "frame", "free", "freeze", "frighten", "fry", "fuel", "gain",
	"gallop", "gather", "gaze", "generate", "glance", "glide", "glow", "glue", "grab", "grant",
	"grasp", "greet", "grin", "grind", "grip", "groan", "grow", "growl", "guarantee", "guard",
	"guess", "guide", "hammer", "hand", "handle", "hang", "happen", "harvest", "hatch", "haunt",
	"head", "heal", "heap", "hear", "heat", "help", "herd", "hide", "highlight", "hike",
	"hire", "hit", "hold", "hook", "hop", "hope", "hover", "hug", "hum", "hurry",
	"hush", "identify", "ignite", "ignore", "illustrate", "imagine", "imitate", "implement", "impress", "improve",
	"include", "increase", "influence", "inform", "inject", "inspect", "inspire", "install", "instruct", "insure",
	"integrate", "intend", "interest", "interfere", "interpret", "interrupt", "interview", "introduce", "invent", "invest",
	"investigate", "invite", "itch", "jam", "jog", "join", "joke", "judge", "juggle", "jump",
	"justify", "keep", "kick", "kiss", "kneel", "knit", "knock", "knot", "know", "label",
	"land", "last", "laugh", "launch", "lay", "lead", "lean", "leap", "learn", "leave",
	"lecture", "lend", "level", "license", "lick", "lift", "light", "like", "limp", "list",
	"listen", "live", "load", "locate", "lock", "log", "long", "look", "loosen", "lose",
	"love", "maintain", "make", "manage", "manipulate", "march", "mark", "marry", "mask", "match",
	"mate", "matter", "measure", "meddle", "mediate", "meet", "melt", "memorise", "mend", "mentor",
	"milk", "mine", "miss", "mix", "moan", "model", "modify", "monitor", "moor", "motivate",
	"move", "mow", "muddle", "multiply", "murmur", "nail", "name", "navigate", "need", "negotiate",
	"nest", "nod", "nominate", "normalise", "note", "notice", "number", "nurse", "obey", "object",
	"observe", "obtain", "occur", "offer", "officiate", "open", "operate", "order", "organise", "orient",
	"originate", "overcome", "overflow", "oversee", "overtake", "owe", "own", "pack", "paddle", "paint",
	"park", "part", "participate", "pass", "paste", "pat", "pause", "pay", "peck", "pedal",
	"peel", "peep", "perceive", "perfect", "perform", "permit", "persuade", "phone", "photograph", "pick",
	"pilot", "pinch", "pine", "pinpoint", "pioneer", "place", "plan", "plant", "play", "plead",
	"please", "plug", "point", "poke", "polish", "pop", "possess", "post", "pour", "practise",
	"praise", "pray", "preach", "precede", "predict", "prefer", "prepare", "prescribe", "present", "preserve",
	"press", "pretend", "prevent", "prick", "print", "process", "procure", "produce", "profess", "program",
	"progress", "project", "promise", "promote", "proofread", "propose", "protect", "prove", "provide", "publicise",
	"pull", "pump", "punch", "puncture", "purchase", "push", "qualify", "question", "queue", "quit",
	"quiz", "quote", "race", "radiate", "rain", "raise", "rank", "rate", "reach", "read",
	"realign", "realise", "reason", "receive", "recognise", "recommend", "reconcile", "record", "recruit", "reduce",
	"refer", "reflect", "refuse", "regret", "reign", "reinforce", "reject", "rejoice", "relate", "relax",
	"release", "rely", "remain", "remember", "remind", "remove", "render", "reorganise", "repair", "repeat",
	"replace", "reply", "report", "represent", "reproduce", "request", "rescue", "research", "resolve", "respond",
	"restore", "restructure", "retire", "retrieve", "return", "review", "revise", "rhyme", "rid", "ride",
	"ring", "rinse", "rise", "risk", "roar", "rock", "roll", "rot", "rub", "rule",
	"run", "rush", "sail", "satisfy", "save", "saw", "scare", "scatter", "schedule", "scorch",
	"scrape", "scratch", "scream", "screw", "scribble", "scrub", "seal", "search", "secure", "see",
	"seek", "select", "sell", "send", "sense", "separate", "serve", "service", "set", "settle",
	"sew", "shade", "shake", "shape", "share", "shave", "shelter", "shine", "shiver", "shock",
	"shop", "show", "shrink", "shrug", "shut", "sigh", "sign", "signal", "simplify", "sing",
	"sink", "sip", "sit", "sketch", "ski", "skip", "slap", "sleep", "slide", "sling",
	"slink", "slip", "slit", "smash", "smell", "smile", "smoke", "snatch", "sneak", "sneeze",
	"sniff", "snore", "snow", "soak", "solve", "soothe", "sort", "sound", "sow", "spare",
	"spark", "sparkle", "speak", "specify", "speed", "spell", "spend", "spill", "spin", "split",
	"spoil", "spot", "spray", "spread", "spring", "sprout", "squash", "squeak", "squeal", "squeeze",
	"stain", "stamp", "stand", "stare", "start", "stay", "steer", "step", "stick", "stimulate",
	"sting", "stir", "stitch", "stop", "store", "strap", "streamline", "strengthen", "stretch", "stride",
	"strike", "string", "strip", "strive", "stroke", "structure", "study", "stuff", "sublet", "subtract",
	"succeed", "suggest", "suit", "summarise", "supervise", "supply", "support", "suppose", "surprise", "surround",
	"suspect", "suspend", "swear", "sweat", "sweep", "swell", "swim", "swing", "switch", "symbolise",
	"synthesise", "systemise", "tabulate", "take", "talk", "tame", "tap", "target", "taste", "teach",
	"tear", "tease", "telephone", "tell", "tempt", "test", "thank", "thaw", "think", "thrive",
	"throw", "thrust", "tick", "tickle", "tie", "time", "tip", "tire", "touch", "tour",
	"tow", "trace", "trade", "train", "transcribe", "transfer", "transform", "translate", "transport", "trap",
	"travel", "tread", "treat", "tremble", "trick", "trip", "trot", "trouble", "troubleshoot", "trust",
	"try", "tug", "tumble", "turn", "tutor", "twist", "type", "undergo", "understand", "undertake",
	"unfasten", "unify", "unite", "unlock", "unpack", "untidy", "update", "upgrade", "uphold", "upset",
	"use", "utilise", "vanish", "vary", "verbalise", "verify", "vex", "visit", "wail", "wait",
	"wake", "walk", "wander", "want", "warm", "warn", "wash", "waste", "watch", "water",
	"wave", "wear", "weave", "wed", "weep", "weigh", "welcome", "wend", "wet", "whine",
	"whip", "whirl", "whisper", "whistle", "win", "wind", "wink", "wipe", "wish", "withdraw",
	"withstand", "wobble", "wonder", "work", "worry", "wrap", "wrestle", "wriggle", "write", "yawn",
	"yell", "yield", "zap", "zip", "zoom",
}

var adjectives = []string{
	"able", "abundant", "acidic", "active", "adorable", "adventurous", "agile", "agreeable", "airy", "alert",
	"alive", "amazing", "amber", "ambitious", "ample", "amused", "ancient", "angular", "animated", "apt",
	"aquatic", "arctic", "aromatic", "artful", "artistic", "astonishing", "astute", "atomic", "attentive", "audible",
	"august", "auspicious", "authentic", "autumn", "avid", "awake", "aware", "awesome", "balmy", "bashful",
	"basic", "beaming", "beautiful", "bendy", "benevolent", "best", "better", "big", "bitter", "bizarre",
	"black", "bland", "blank", "blazing", "blissful", "blocky", "blond", "blue", "blunt", "blushing",
	"bold", "bony", "bossy", "bouncy", "boundless", "brainy", "brash", "brave", "breezy", "brief",
	"bright", "brilliant", "brisk", "broad", "bronze", "brown", "bubbly", "bulky", "bumpy", "buoyant",
	"burly", "bustling", "busy", "buttery", "calm", "candid", "capable", "careful", "caring", "casual",
	"cautious", "celestial", "certain", "charming", "cheeky", "cheerful", "cheery", "chewy", "chief", "chilly",
	"chirpy", "chubby", "chunky", "circular", "civic", "civil", "classic", "clean", "clear", "clever",
	"cloudy", "clumsy", "coastal", "cobalt", "colossal", "colourful", "comfy", "comic", "common", "compact",
	"complete", "cool", "coral", "cordial", "cosmic", "cosy", "courageous", "courteous", "crafty", "creamy",
	"creative", "crimson", "crisp", "crispy", "crooked", "crowded", "crunchy", "cuddly", "cultured", "curious",
	"curly", "curved", "cute", "cyan", "daily", "dainty", "damp", "dapper", "daring", "dark",
	"dashing", "dazzling", "dear", "decent", "decisive", "deep", "definite", "delicate", "delicious", "delightful",
	"dense", "dependable", "detailed", "devoted", "dewy", "diligent", "dim", "direct", "discreet", "distant",
	"dizzy", "dotted", "double", "downy", "dreamy", "dry", "dual", "dusty", "dutiful", "dynamic",
	"eager", "early", "earnest", "earthy", "easy", "eclectic", "edible", "educated", "elastic", "elated",
	"elderly", "electric", "elegant", "elfin", "eloquent", "emerald", "eminent", "enchanted", "endless", "energetic",
	"enormous", "entire", "epic", "equal", "essential", "eternal", "even", "evergreen", "exact", "excellent",
	"excited", "exemplary", "exotic", "expert", "extra", "fabulous", "faint", "fair", "faithful", "famous",
	"fancy", "fantastic", "far", "fast", "fearless", "feathery", "feisty", "festive", "fierce", "fine",
	"firm", "first", "fit", "fixed", "flaky", "flashy", "flat", "flawless", "fleet", "flexible",
	"floppy", "floral", "fluffy", "fluid", "flying", "focused", "fond", "foolish", "formal", "fortunate",
	"fragrant", "frail", "frank", "free", "fresh", "friendly", "frilly", "frosty", "frozen", "fruity",
	"full", "funny", "furry", "fuzzy", "gallant", "gentle", "genuine", "giant", "giddy", "gifted",
	"gigantic", "giving", "glad", "glamorous", "gleaming", "glittering", "global", "glossy", "glowing", "golden",
	"good", "gorgeous", "graceful", "gracious", "grand", "grateful", "great", "green", "grey", "grizzled",
	"groovy", "grounded", "growing", "grown", "gusty", "hairy", "handmade", "handsome", "handy", "happy",
	"hardy", "harmless", "harmonious", "hasty", "healthy", "hearty", "heavenly", "heavy", "helpful", "heroic",
	"hidden", "high", "hilarious", "hollow", "homely", "honest", "hopeful", "hot", "huge", "humble",
	"humming", "hungry", "husky", "icy", "ideal", "idle", "illustrious", "imaginary", "immense", "impartial",
	"important", "impressive", "improbable", "indigo", "infinite", "informal", "innocent", "inventive", "invisible", "ivory",
	"jade", "jagged", "jaunty", "jazzy", "jolly", "jovial", "joyful", "joyous", "jubilant", "juicy",
	"jumbo", "jumpy", "junior", "just", "keen", "kind", "kindly", "kingly", "knotty", "knowing",
	"lanky", "large", "last", "late", "lavish", "lawful", "lazy", "leafy", "lean", "learned",
	"legal", "lemon", "level", "light", "likable", "lilac", "limber", "limited", "lined", "linen",
	"little", "live", "lively", "loud", "lovely", "loving", "low", "loyal", "lucid", "lucky",
	"luminous", "lush", "lyrical", "magenta", "magic", "magical", "magnetic", "main", "majestic", "major",
	"mammoth", "marbled", "marine", "maroon", "massive", "mature", "maximum", "meek", "mellow", "melodic",
	"merry", "messy", "metal", "mighty", "mild", "milky", "mini", "minor", "mint", "misty",
	"mobile", "modern", "modest", "moist", "molten", "monthly", "moody", "mossy", "motionless", "muddy",
	"muffled", "mundane", "murky", "musical", "mutual", "mysterious", "mystic", "narrow", "native", "natural",
	"nautical", "navy", "neat", "necessary", "needy", "nervous", "new", "next", "nice", "nifty",
	"nimble", "noble", "noisy", "normal", "northern", "notable", "novel", "nutty", "oaken", "obedient",
	"oblong", "obvious", "occasional", "ocean", "odd", "official", "oily", "old", "olive", "only",
	"open", "optimal", "orange", "orderly", "ordinary", "organic", "original", "ornate", "outgoing", "outstanding",
	"oval", "overjoyed", "paisley", "pale", "paper", "parallel", "passionate", "past", "patient", "peaceful",
	"peach", "pearly", "peppy", "perfect", "perky", "pink", "placid", "plain", "playful", "pleasant",
	"plucky", "plump", "plush", "pointed", "poised", "polar", "polished", "polite", "popular", "portable",
	"posh", "potent", "powerful", "practical", "precious", "precise", "premium", "prestigious", "pretty", "prickly",
	"prime", "pristine", "private", "prize", "productive", "proper", "proud", "prudent", "public", "puffy",
	"punctual", "pure", "purple", "puzzled", "quaint", "quick", "quiet", "quirky", "quizzical", "radiant",
	"ragged", "rainy", "rapid", "rare", "rational", "ready", "real", "recent", "red", "refined",
	"regal", "regular", "relaxed", "reliable", "remote", "resolute", "rich", "right", "rigid", "ripe",
	"rising", "robust", "rocky", "rosy", "rotund", "round", "royal", "ruby", "ruddy", "rugged",
	"rural", "rustic", "sandy", "sassy", "satin", "savory", "scarlet", "scenic", "scholarly", "scientific",
	"scrappy", "sculpted", "seasoned", "secret", "secure", "sedate", "serene", "serious", "shaggy", "shallow",
	"sharp", "shiny", "short", "shy", "silent", "silken", "silly", "silver", "simple", "sincere",
	"single", "sizzling", "skillful", "sleek", "sleepy", "slender", "slim", "slow", "small", "smart",
	"smiling", "smoky", "smooth", "snappy", "snazzy", "snowy", "snug", "soaring", "sociable", "soft",
	"solar", "solemn", "solid", "sonic", "sophisticated", "sore", "sparkling", "special", "speedy", "spicy",
	"spiffy", "spirited", "splendid", "spotless", "spotted", "spry", "square", "stable", "stark", "starry",
	"stately", "steady", "steel", "steep", "sticky", "still", "stormy", "stout", "straight", "strange",
	"striped", "strong", "stunning", "sturdy", "stylish", "subtle", "sudden", "sugary", "sunny", "super",
	"superb", "supreme", "sure", "svelte", "sweet", "swift", "tall", "tame", "tangible", "tangy",
	"tart", "tasty", "teal", "tender", "tense", "terrific", "thankful", "thick", "thin", "thirsty",
	"thorough", "thoughtful", "thrifty", "tidy", "tight", "timely", "tiny", "tired", "tolerant", "top",
	"tough", "tranquil", "treasured", "tremendous", "trendy", "tricky", "trim", "trusty", "truthful", "turquoise",
	"twin", "ultimate", "unique", "united", "upbeat", "upright", "urban", "useful", "usual", "vague",
	"valiant", "valid", "vast", "velvet", "verdant", "vibrant", "victorious", "vigilant", "vintage", "violet",
	"virtual", "visible", "vital", "vivid", "vocal", "wacky", "warm", "wary", "watchful", "wavy",
	"wealthy", "weekly", "weightless", "welcome", "western", "whimsical", "whispering", "white", "whole", "wide",
	"wild", "willing", "windy", "winged", "winter", "wintry", "wise", "witty", "wobbly", "wonderful",
	"wooden", "woolly", "worthy", "yawning", "yearly", "yellow", "young", "youthful", "yummy", "zany",
	"zealous", "zesty", "zigzag",
}

var nouns = []string{
	"abacus", "acorn", "acrobat", "actor", "adapter", "address", "admiral", "adventure", "aeroplane", "agent",
	"airport", "aisle", "alarm", "album", "alley", "alligator", "almanac", "alpaca", "altar", "amplifier",
	"anchor", "angle", "animal", "ankle", "answer", "ant", "antelope", "anthem", "apple", "apricot",
	"apron", "aquarium", "arch", "archer", "arena", "armadillo", "armchair", "arrow", "artist", "asteroid",
	"atlas", "atom", "attic", "audience", "author", "avalanche", "avenue", "avocado", "axe", "backpack",
	"badge", "badger", "bagel", "bakery", "balcony", "ball", "balloon", "banana", "band", "bandana",
	"banjo", "bank", "banner", "barn", "barrel", "basket", "bat", "bath", "battery", "bay",
	"beach", "beacon", "bead", "beak", "beam", "bean", "bear", "beard", "beaver", "bed",
	"bee", "beetle", "bell", "belt", "bench", "berry", "bicycle", "billboard", "binder", "bird",
	"biscuit", "bison", "blanket", "blender", "blimp", "block", "blossom", "blueprint", "boat", "bobcat",
	"bonfire", "bongo", "bonnet", "book", "bookcase", "boot", "bottle", "boulder", "bow", "bowl",
	"box", "bracelet", "branch", "bread", "breeze", "brick", "bridge", "brook", "broom", "brush",
	"bubble", "bucket", "buffalo", "bugle", "building", "bulb", "bulldozer", "bumblebee", "bunny", "buoy",
	"bus", "bush", "butter", "butterfly", "button", "buzzard", "cabin", "cabinet", "cable", "cactus",
	"cafe", "cage", "cake", "calendar", "camel", "camera", "campfire", "canal", "canary", "candle",
	"candy", "cannon", "canoe", "canyon", "cap", "captain", "car", "caravan", "card", "cargo",
	"carnival", "carpet", "carrot", "cart", "cartoon", "castle", "cat", "caterpillar", "cathedral", "cave",
	"ceiling", "cellar", "cello", "chair", "chalk", "chameleon", "channel", "chapel", "chariot", "cheese",
	"cheetah", "cherry", "chess", "chestnut", "chicken", "chimney", "chipmunk", "chisel", "chocolate", "cinema",
	"circle", "circus", "city", "clam", "clarinet", "classroom", "claw", "cliff", "clock", "closet",
	"cloud", "clover", "clown", "coast", "coat", "cobra", "cocoa", "coconut", "coffee", "coin",
	"comet", "compass", "computer", "cookie", "coral", "corn", "corner", "cottage", "cotton", "couch",
	"cougar", "country", "cow", "coyote", "crab", "cradle", "crane", "crate", "crayon", "creek",
	"cricket", "crocodile", "crow", "crown", "crystal", "cube", "cucumber", "cup", "cupboard", "curtain",
	"cushion", "cymbal", "daisy", "dam", "dancer", "dandelion", "dawn", "deck", "deer", "den",
	"desert", "desk", "diamond", "diary", "dice", "dinosaur", "dish", "doctor", "dog", "doll",
	"dolphin", "dome", "donkey", "door", "doughnut", "dove", "dragon", "dragonfly", "drawer", "dream",
	"dress", "drum", "duck", "dumpling", "dune", "eagle", "earring", "easel", "echo", "eel",
	"egg", "elbow", "elephant", "elevator", "elf", "elk", "emerald", "emu", "engine", "envelope",
	"eraser", "escalator", "estuary", "fabric", "face", "factory", "falcon", "fan", "farm", "feather",
	"fence", "fern", "ferret", "ferry", "festival", "fiddle", "field", "fig", "finch", "fire",
	"fireplace", "firework", "fish", "flag", "flamingo", "flashlight", "flute", "fog", "folder", "forest",
	"fork", "fort", "fossil", "fountain", "fox", "frame", "freezer", "frog", "fruit", "funnel",
	"galaxy", "gallery", "garage", "garden", "garlic", "gate", "gazebo", "gazelle", "gecko", "gem",
	"geyser", "ghost", "giraffe", "glacier", "glass", "glove", "goat", "goblet", "goldfish", "gondola",
	"goose", "gorilla", "grape", "grass", "grasshopper", "gravel", "greenhouse", "griffin", "grill", "guitar",
	"gull", "gumdrop", "habitat", "hall", "hammer", "hammock", "hamster", "hand", "harbor", "harp",
	"hat", "hatchet", "hawk", "hazelnut", "heart", "hedge", "hedgehog", "helicopter", "helmet", "hen",
	"heron", "hill", "hippo", "hive", "hobby", "hockey", "honey", "hoof", "horizon", "horn",
	"horse", "hose", "hotel", "hound", "house", "hummingbird", "hut", "hyena", "ice", "iceberg",
	"igloo", "iguana", "inch", "ink", "inn", "insect", "island", "ivy", "jacket", "jaguar",
	"jam", "jar", "javelin", "jeans", "jeep", "jellyfish", "jetty", "jewel", "jigsaw", "journal",
	"journey", "jug", "juice", "jungle", "kangaroo", "kayak", "kettle", "key", "keyboard", "kiln",
	"kingdom", "kite", "kitten", "kiwi", "knapsack", "knight", "knot", "koala", "label", "ladder",
	"ladle", "lagoon", "lake", "lamb", "lamp", "lantern", "laptop", "lark", "lasso", "lava",
	"lawn", "leaf", "lemon", "lemur", "leopard", "letter", "library", "lighthouse", "lily", "lime",
	"lion", "lizard", "llama", "lobster", "lock", "locket", "locomotive", "lodge", "log", "lollipop",
	"loom", "lotus", "lute", "lynx", "machine", "magnet", "magpie", "mailbox", "mammoth", "mango",
	"mantis", "map", "maple", "marble", "marker", "market", "marsh", "mask", "meadow", "medal",
	"melon", "mermaid", "meteor", "microphone", "microscope", "mill", "mirror", "mitten", "moat", "mole",
	"monastery", "monkey", "monsoon", "moon", "moose", "mosaic", "moth", "motor", "mountain", "mouse",
	"muffin", "mug", "mule", "museum", "mushroom", "nail", "napkin", "narwhal", "nebula", "necklace",
	"needle", "nest", "net", "newt", "nickel", "nightingale", "noodle", "notebook", "nugget", "nut",
	"oak", "oar", "oasis", "ocean", "octopus", "office", "olive", "onion", "opal", "orange",
	"orbit", "orchard", "orchestra", "orchid", "ostrich", "otter", "oven", "owl", "ox", "oyster",
	"paddle", "pagoda", "pail", "paintbrush", "palace", "palette", "pancake", "panda", "panther", "paper",
	"parachute", "parade", "parrot", "pasta", "path", "peach", "peacock", "peak", "peanut", "pear",
	"pearl", "pebble", "pelican", "pen", "pencil", "penguin", "pepper", "piano", "pickle", "picnic",
	"pie", "pier", "pig", "pigeon", "pillow", "pilot", "pine", "pineapple", "pipe", "pirate",
	"pizza", "planet", "plank", "plate", "platypus", "plum", "pocket", "pond", "pony", "popcorn",
	"poppy", "porch", "porcupine", "portrait", "postcard", "pot", "potato", "prairie", "pretzel", "prism",
	"pudding", "puffin", "pumpkin", "puppet", "puppy", "puzzle", "pyramid", "quail", "quarry", "quartz",
	"queen", "quill", "quilt", "quiver", "rabbit", "raccoon", "radio", "radish", "raft", "rainbow",
	"raisin", "rake", "ranch", "raven", "razor", "reef", "reindeer", "ribbon", "rice", "riddle",
	"ring", "river", "road", "robin", "robot", "rocket", "rooftop", "rooster", "rope", "rose",
	"rowboat", "rug", "ruler", "saddle", "sail", "salad", "salamander", "salmon", "sandal", "sandwich",
	"sapphire", "satellite", "saucer", "sausage", "saxophone", "scarf", "school", "scissors", "scooter", "scorpion",
	"sculpture", "seagull", "seahorse", "seal", "seashell", "season", "seed", "shadow", "shark", "sheep",
	"shelf", "shell", "shield", "ship", "shoe", "shovel", "shrimp", "signpost", "silo", "skateboard",
	"sketchbook", "ski", "sky", "skyscraper", "sled", "sloth", "snail", "snake", "snowflake", "snowman",
	"soap", "sock", "sofa", "soup", "spaceship", "sparrow", "spatula", "spider", "spinach", "sponge",
	"spoon", "spring", "sprout", "squash", "squid", "squirrel", "stable", "stadium", "staircase", "stamp",
	"star", "starfish", "statue", "steam", "stone", "stool", "stork", "storm", "stove", "strawberry",
	"stream", "street", "submarine", "suitcase", "summit", "sun", "sunflower", "swallow", "swan", "sweater",
	"swing", "sword", "table", "tablet", "taco", "tadpole", "tambourine", "tangerine", "tank", "tapestry",
	"teapot", "telescope", "temple", "tent", "terrace", "thimble", "thistle", "thunder", "ticket", "tiger",
	"tile", "toad", "toast", "toboggan", "tomato", "toolbox", "tooth", "torch", "tortoise", "toucan",
	"tower", "tractor", "trail", "train", "trampoline", "treasure", "tree", "triangle", "tricycle", "trombone",
	"trophy", "trout", "truck", "trumpet", "tulip", "tuna", "tunnel", "turnip", "turtle", "tuxedo",
	"typewriter", "ukulele", "umbrella", "unicorn", "universe", "valley", "van", "vase", "vault", "vegetable",
	"velvet", "vest", "viaduct", "village", "vine", "violin", "volcano", "vulture", "waffle", "wagon",
	"walnut", "walrus", "wand", "wardrobe", "warehouse", "wasp", "watch", "waterfall", "wave", "weasel",
	"whale", "wheat", "wheel", "whistle", "willow", "windmill", "window", "wing", "wizard", "wolf",
	"wombat", "woodpecker", "workshop", "worm", "wreath", "xylophone", "yacht", "yak", "yard", "yarn",
	"yogurt", "yoyo", "zebra", "zeppelin", "zipper", "zoo",
}
