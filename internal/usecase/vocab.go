package usecase

// Static vocabulary tables used by the normalizer and matcher. These
// are data, not code: loaded once, never mutated, and unit-tested
// independently of the pipeline that consumes them.

// proteinTerms are core protein foods, checked first when picking a
// primary food term.
var proteinTerms = map[string]bool{
	"chicken": true, "beef": true, "pork": true, "fish": true,
	"salmon": true, "turkey": true, "lamb": true, "shrimp": true,
	"tuna": true, "bacon": true, "sausage": true, "steak": true,
	"ham": true, "crab": true, "lobster": true, "tofu": true,
	"egg": true, "eggs": true, "duck": true, "ribs": true,
	"meatball": true, "meatballs": true, "brisket": true,
}

// genericFoodTerms are recognizable non-protein dishes and staples.
var genericFoodTerms = map[string]bool{
	"pizza": true, "burger": true, "cheeseburger": true, "sandwich": true,
	"salad": true, "soup": true, "pasta": true, "rice": true,
	"burrito": true, "taco": true, "tacos": true, "wrap": true,
	"bread": true, "cheese": true, "milk": true, "yogurt": true,
	"oatmeal": true, "pancakes": true, "waffles": true, "bagel": true,
	"fries": true, "noodles": true, "quesadilla": true, "nachos": true,
	"omelette": true, "omelet": true, "smoothie": true, "muffin": true,
	"donut": true, "cookie": true, "brownie": true, "sushi": true,
	"curry": true, "stew": true, "chili": true, "lasagna": true,
}

// compoundPhrases are multi-word dishes checked against the remaining
// text in list order; the first containment wins.
var compoundPhrases = []string{
	"mac and cheese",
	"fish and chips",
	"chicken and waffles",
	"grilled cheese",
	"hot dog",
	"french toast",
	"french fries",
	"pulled pork",
	"fried rice",
	"spring roll",
	"caesar salad",
	"peanut butter",
	"ice cream",
	"pot pie",
	"club sandwich",
}

// cookingMethods is the fixed modifier vocabulary. Order matters: terms
// are extracted (and removed from the working text) in this order.
var cookingMethods = []string{
	"grilled", "fried", "baked", "roasted", "smoked", "steamed",
	"sauteed", "braised", "broiled", "blackened", "poached",
	"seared", "breaded", "crispy", "charbroiled", "battered",
}

// noiseWords are connectives and menu filler removed by whole-word
// matching before food-term extraction.
var noiseWords = map[string]bool{
	"with": true, "served": true, "and": true, "or": true, "the": true,
	"a": true, "an": true, "of": true, "on": true, "in": true,
	"our": true, "your": true, "fresh": true, "topped": true,
	"choice": true, "side": true, "includes": true, "comes": true,
	"homemade": true, "house": true, "style": true, "special": true,
	"classic": true, "famous": true, "signature": true, "daily": true,
	"new": true, "original": true, "delicious": true, "hearty": true,
}

// accompanimentTerms are sides, sauces, and condiments recognized as
// accompaniments when they survive in the remaining text.
var accompanimentTerms = map[string]bool{
	"rice": true, "fries": true, "salad": true, "slaw": true,
	"coleslaw": true, "beans": true, "bread": true, "toast": true,
	"vegetables": true, "veggies": true, "potatoes": true,
	"mashed": true, "gravy": true, "sauce": true, "salsa": true,
	"guacamole": true, "ketchup": true, "mustard": true, "mayo": true,
	"ranch": true, "chips": true, "corn": true, "tortilla": true,
	"pickles": true, "onions": true, "cheese": true, "sour": true,
	"greens": true, "soup": true, "biscuit": true, "cornbread": true,
}

// stopWords are dropped during tokenization for every matching
// strategy. Includes units and packaging noise alongside basic English
// stop words.
var stopWords = map[string]bool{
	"a": true, "an": true, "the": true, "and": true, "or": true,
	"of": true, "in": true, "on": true, "at": true, "to": true,
	"for": true, "with": true, "by": true, "from": true, "is": true,
	"it": true, "as": true, "be": true, "per": true,
	"oz": true, "fl": true, "lb": true, "lbs": true, "ml": true,
	"gram": true, "grams": true, "kg": true, "ounce": true,
	"ounces": true, "cup": true, "cups": true, "tbsp": true,
	"tsp": true, "piece": true, "pieces": true, "each": true,
	"small": true, "medium": true, "large": true, "regular": true,
	"combo": true, "meal": true, "size": true,
}

// brandTerms is the brand/category vocabulary used for the token
// overlap boost. Chains here usually have an R-code catalog behind
// them.
var brandTerms = map[string]bool{
	"mcdonalds": true, "wendys": true, "subway": true, "chipotle": true,
	"starbucks": true, "dominos": true, "kfc": true, "popeyes": true,
	"dunkin": true, "panera": true, "applebees": true, "chilis": true,
	"dennys": true, "ihop": true, "sonic": true, "arbys": true,
	"hardees": true, "culvers": true, "whataburger": true,
}

// categoryByFood maps a primary food to a broader search category used
// as a last query-generation strategy.
var categoryByFood = map[string]string{
	"chicken": "poultry",
	"turkey":  "poultry",
	"duck":    "poultry",
	"beef":    "beef",
	"steak":   "beef",
	"pork":    "pork",
	"bacon":   "pork",
	"ham":     "pork",
	"fish":    "seafood",
	"salmon":  "seafood",
	"tuna":    "seafood",
	"shrimp":  "seafood",
	"crab":    "seafood",
	"lobster": "seafood",
	"salad":   "vegetables",
	"rice":    "grains",
	"pasta":   "grains",
	"bread":   "grains",
	"milk":    "dairy",
	"cheese":  "dairy",
	"yogurt":  "dairy",
}
