package fsm

import (
	"fmt"
	"math/rand"

	"github.com/hupe1980/dinersim/menu"
	"github.com/hupe1980/dinersim/role"
)

// Step system prompts. The wording is part of the engine's behavior contract
// with the generation provider: each prompt states the persona, the task and
// the strict output rules the matching validation profile enforces.

func greetingPrompt(r role.Role) string {
	return fmt.Sprintf(`# Role
%s

# Task
**Greeting new customers**:
1. Start with a unique welcome phrase.
2. After welcoming, ask the customer how their day has been.
3. 3-4 sentences total, with natural flow between welcome and question.

# Strict Rules
1. Use only English.
2. Include ONLY conversation content (no extra explanations, labels, or metadata).
3. Format as a single line with no line breaks.
4. Do NOT enclose the response in quotation marks.`, r.Persona())
}

// dayStatuses are the possible moods seeded into the day-reply prompt,
// picked by weighted random draw so transcripts vary between sessions.
var dayStatuses = []struct {
	text   string
	weight float64
}{
	{"You are having a wonderful/great/lovely day.", 0.4},
	{"You are having a tough/rough/bad/exhausted day—something minor went wrong", 0.3},
	{"You are having an average/uneventful day—nothing particularly good or bad happened.", 0.3},
}

func pickDayStatus() string {
	total := 0.0
	for _, s := range dayStatuses {
		total += s.weight
	}
	roll := rand.Float64() * total
	for _, s := range dayStatuses {
		if roll < s.weight {
			return s.text
		}
		roll -= s.weight
	}
	return dayStatuses[len(dayStatuses)-1].text
}

func dayReplyPrompt(r role.Role) string {
	return fmt.Sprintf(`# Role
%s

# Task
**Respond to waiter's Greeting**:
1. %s
2. Briefly and politely describe your day in 4-5 sentences.
3. Keep the response in one line with no line breaks.
4. Do NOT ask any questions.

# Strict Rules
1. Use only English.
2. Include only conversation content (no explanations).
3. Do NOT use quotation marks.
4. THIS RULE TAKES PRECEDENCE OVER ALL OTHERS: No questions of any kind in the response.`,
		r.Persona(), pickDayStatus())
}

func askFavoritesPrompt(r role.Role) string {
	return fmt.Sprintf(`# Role
%s

# Task
**Ask about the customer's top 3 favorite foods**:
1. Reference the customer's previous response about their day when relevant to keep the conversation natural.
2. Clearly ask for their top 3 favorite foods.
3. Add a brief, positive note to encourage them.
4. 3-5 sentences total, with a smooth and friendly flow.

# Strict Rules
1. Use only English.
2. Include ONLY conversation content (no extra explanations).
3. Format as a single line with no line breaks.
4. Do NOT enclose the response in quotation marks.
5. Explicitly request "top 3" foods.`, r.Persona())
}

func favoritesReplyPrompt(r role.Role) string {
	return fmt.Sprintf(`# Role
%s

# Task
**Share your top 3 favorite foods**:
1. Randomly select 3 distinct foods from a diverse range (e.g., Italian, Asian, American, vegetarian options—avoid repeating the same cuisine type).
2. For each food, add a brief, unique reason why you like it (e.g., "sushi because it's fresh and light" or "pasta because of the rich sauces").
3. Present them in a natural, conversational flow (not numbered lists), in 3-4 sentences total.
4. Ensure the combination of foods is different from typical responses (avoid overused trios like "pizza, burgers, fries").

# Strict Rules
1. Use only English.
2. Include ONLY conversation content (no explanations or labels).
3. Format as a single line with no line breaks.
4. Do NOT enclose in quotation marks.
5. Never list fewer or more than 3 foods—exactly 3 must be mentioned.
6. Do NOT ask any questions.`, r.Persona())
}

func askOrderPrompt(r role.Role) string {
	return fmt.Sprintf(`# Role
%s

# Task
**Ask the customer what they'd like to order today**:
1. Invite them to order, using an open and helpful tone (e.g., "feel free to choose from our menu" or "we can prepare something special based on your favorites").
2. 2-3 sentences, flowing smoothly from their food preferences.

# Strict Rules
1. Use only English.
2. Include ONLY conversation content (no extra explanations).
3. Format as a single line with no line breaks.
4. Do NOT enclose in quotation marks.`, r.Persona())
}

func orderReplyPrompt(r role.Role, catalog *menu.Catalog) string {
	return fmt.Sprintf(`# Role
%s

# Task
**Respond with your order**:
1. Choose 1-2 specific dishes in the restaurant menu.
2. dish should be in the restaurant menu
3. Do not order same type of dishes (e.g. Grilled Tofu Salad and Fresh Fruit Salad are both salad)
4. Briefly explain why you chose these dishes.
5. Keep the response natural and conversational: 4-6 sentences, flowing from the waiter's question.

# Restaurant Menu
%s

# Strict Rules
1. Use only English.
2. Include ONLY conversation content (no explanations or labels).
3. Format as a single line with no line breaks.
4. Do NOT enclose in quotation marks.
5. Ensure the order connects logically to your previously mentioned favorite foods.`,
		r.Persona(), catalog.DescriptionList())
}

func analyzePrompt(catalog *menu.Catalog) string {
	return fmt.Sprintf(`# Role
%s

# Task
Determine the customer's dietary preference using ONLY the customer's messages (lines starting with "Customer:") and the restaurant menu and its ingredients.

# Definitions (use these strictly)
- vegan: excludes all animal products: meat, poultry, fish, seafood, dairy, eggs, honey, gelatin.
- vegetarian: excludes meat, poultry, fish, seafood; may include dairy and/or eggs and/or honey.
- non-vegetarian: includes any meat, poultry, fish, or seafood.
- unknown: insufficient or conflicting evidences.

# Strict Rules
1. Extract "favorite_dishes":
    a. Locate the line starting with "Customer's Favorite:".
    b. Read the entire line, find all phrases that refer to specific foods/dishes (e.g., "Thai green curry", "eggplant parmesan", "sushi").
    c. List these phrases as strings in "favorite_dishes" (do not abbreviate, e.g., write "Thai green curry" not "curry").
2. Extract "ordered_dishes":
    a. Locate the line starting with "Customer's Order:".
    b. Extract dishes that are EXACTLY in the restaurant menu (e.g., "Roasted Seasonal Veggies" is in the menu, so include it).
3. Check Customer's favorite dishes according to their description and how the dishes are categorized. Cross-check ordered_dishes with the provided menu and its ingredients.
    The preference detection steps is as follows:
    a. First check non-vegetarian (highest priority).
    b. If non-vegetarian is not detected, check vegetarian.
    c. If vegetarian is detected, check vegan.
    d. otherwise, check unknown:
        - If favorite_dishes and ordered_dishes contains all kinds of foods and you cannot tell the customer's dietary preference → "non-vegetarian".
        - If favorite_dishes is empty AND ordered_dishes is empty → "unknown".
        - If evidence conflicts (e.g., says "vegan" but orders dairy) → "unknown".
4. Response must be a valid JSON object with exactly these keys:
    - "dietary_preference": one of ["vegetarian", "vegan", "non-vegetarian", "unknown"]
    - "confidence_percent": integer 0-100. 100 if Step 1/2 has clear evidence (meat/ingredient match), else 0-90 depends on the evidences
    - "evidence": brief clues you used to determine the customer's dietary preference (e.g., mentions of cheese or fish).
        a. If the result is non-vegetarian, the evidence should include the meat clue (e.g. Roast Duck -> non-vegetarian).
        b. If the result is vegetarian, the evidence should include the non-vegan clue (e.g. Vegetable Omelette -> not vegan).
        c. If the result is unknown, the evidence should include the conflict clue (e.g. Roast Duck + vegan statements -> unknown).
    - "ordered_dishes": list that step 2 extracted
    - "favorite_dishes": list that step 1 extracted
5. JSON must be minified (no line breaks, extra spaces). Do not include any content outside the JSON object.

# Restaurant Menu (format: - name: ingredients list)
%s`, role.Analyzer().Persona(), catalog.IngredientList())
}
