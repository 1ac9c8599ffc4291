package menu

// Default returns the standard Cosmos Restaurant catalog. Roughly the first
// half of the list is meat-free and the rest is not, which gives the analysis
// step enough signal in either direction.
func Default() *Catalog {
	return New(defaultDishes)
}

var defaultDishes = []Dish{
	{
		Name:        "Garden Fresh Salad",
		Description: "Crunchy mix of lettuce, tomatoes, cucumbers, and carrots with olive oil dressing",
		Ingredients: []string{"lettuce", "tomato", "cucumber", "carrot", "olive oil"},
	},
	{
		Name:        "Roasted Seasonal Veggies",
		Description: "Assorted seasonal vegetables roasted with garlic and herbs",
		Ingredients: []string{"seasonal vegetables", "garlic", "herbs"},
	},
	{
		Name:        "Veggie Burger",
		Description: "Plant-based patty with lettuce, tomato, and vegan mayo in a whole grain bun",
		Ingredients: []string{"plant-based patty", "lettuce", "tomato", "vegan mayo", "bun"},
	},
	{
		Name:        "Creamy Tomato Soup",
		Description: "Smooth tomato soup with a hint of basil, served with croutons",
		Ingredients: []string{"tomato", "basil", "croutons", "dairy"},
	},
	{
		Name:        "Quinoa Salad",
		Description: "Quinoa mixed with bell peppers, corn, and lime vinaigrette",
		Ingredients: []string{"quinoa", "bell pepper", "corn", "lime"},
	},
	{
		Name:        "Stuffed Roasted Eggplant",
		Description: "Eggplant rolls filled with ricotta and spinach, baked to perfection",
		Ingredients: []string{"eggplant", "ricotta", "spinach", "dairy"},
	},
	{
		Name:        "Mushroom Aglio e Olio",
		Description: "Vegan pasta tossed with sautéed mushrooms, garlic, olive oil, and parsley; finished with nutritional yeast",
		Ingredients: []string{"vegan pasta", "mushroom", "garlic", "olive oil"},
	},
	{
		Name:        "Vegetarian Pizza",
		Description: "Thin crust pizza topped with mushrooms, onions, bell peppers, and mozzarella",
		Ingredients: []string{"pizza", "mushroom", "onion", "bell pepper", "mozzarella", "dairy"},
	},
	{
		Name:        "Butternut Squash Soup",
		Description: "Creamy soup made with butternut squash and spices",
		Ingredients: []string{"butternut squash", "spices", "dairy"},
	},
	{
		Name:        "Chickpea Curry",
		Description: "Spiced chickpeas in a coconut milk sauce, served with rice",
		Ingredients: []string{"chickpea", "coconut milk", "rice"},
	},
	{
		Name:        "Grilled Tofu Salad",
		Description: "Grilled tofu over mixed greens with avocado and balsamic dressing",
		Ingredients: []string{"tofu", "mixed greens", "avocado", "balsamic"},
	},
	{
		Name:        "Spinach Lasagna",
		Description: "Layers of pasta, spinach, ricotta, and marinara sauce",
		Ingredients: []string{"pasta", "spinach", "ricotta", "marinara", "dairy"},
	},
	{
		Name:        "Roasted Sweet Potatoes",
		Description: "Sweet potatoes roasted with cinnamon and a drizzle of honey",
		Ingredients: []string{"sweet potato", "cinnamon", "honey"},
	},
	{
		Name:        "Vegetable Fried Rice",
		Description: "Rice stir-fried with carrots, peas, corn, and soy sauce",
		Ingredients: []string{"rice", "carrot", "peas", "corn", "soy sauce"},
	},
	{
		Name:        "Lentil Soup",
		Description: "Hearty soup with lentils, carrots, and celery",
		Ingredients: []string{"lentil", "carrot", "celery"},
	},
	{
		Name:        "Avocado Toast",
		Description: "Mashed avocado on sourdough bread with a sprinkle of red pepper flakes",
		Ingredients: []string{"bread", "avocado", "red pepper flakes"},
	},
	{
		Name:        "Vegetable Spring Rolls",
		Description: "Crispy rolls filled with cabbage, carrots, and glass noodles",
		Ingredients: []string{"cabbage", "carrot", "glass noodles"},
	},
	{
		Name:        "Broccoli with Cheese",
		Description: "Steamed broccoli topped with melted cheddar cheese",
		Ingredients: []string{"broccoli", "cheddar", "dairy"},
	},
	{
		Name:        "Fresh Fruit Salad",
		Description: "Mix of seasonal fruits with a honey-yogurt dressing",
		Ingredients: []string{"fruit", "yogurt", "honey", "dairy"},
	},
	{
		Name:        "Stir-Fried Tofu",
		Description: "Tofu stir-fried with broccoli, bell peppers, and ginger sauce",
		Ingredients: []string{"tofu", "broccoli", "bell pepper", "ginger sauce"},
	},
	{
		Name:        "Grilled Portobello Steak",
		Description: "Marinated portobello mushrooms grilled with garlic, thyme, and balsamic glaze",
		Ingredients: []string{"portobello mushroom", "balsamic", "garlic", "thyme", "olive oil"},
	},
	{
		Name:        "Cauliflower Buffalo Bites",
		Description: "Roasted cauliflower tossed in spicy buffalo sauce, served with herbs",
		Ingredients: []string{"cauliflower", "hot sauce", "garlic", "olive oil"},
	},
	{
		Name:        "Vegan Ramen",
		Description: "Rich vegetable broth with ramen noodles, tofu, mushrooms, and bok choy",
		Ingredients: []string{"vegetable broth", "ramen noodles", "tofu", "mushroom", "bok choy"},
	},
	{
		Name:        "Vegan Burrito Bowl",
		Description: "Brown rice with black beans, corn, tomato salsa, avocado, and lettuce",
		Ingredients: []string{"brown rice", "black beans", "corn", "tomato salsa", "avocado", "lettuce"},
	},
	{
		Name:        "Spicy Mapo Tofu",
		Description: "Silken tofu simmered in a spicy chili bean sauce with Sichuan peppercorn",
		Ingredients: []string{"tofu", "chili bean paste", "Sichuan peppercorn", "scallion", "vegetable oil"},
	},
	{
		Name:        "Sweet Potato Buddha Bowl",
		Description: "Roasted sweet potato over quinoa with kale and tahini sauce",
		Ingredients: []string{"sweet potato", "quinoa", "kale", "tahini", "sesame"},
	},
	{
		Name:        "Tomato Basil Bruschetta Pasta",
		Description: "Pasta tossed with fresh tomatoes, basil, garlic, and olive oil",
		Ingredients: []string{"pasta", "tomato", "basil", "garlic", "olive oil"},
	},
	{
		Name:        "Edamame Fried Rice",
		Description: "Rice stir-fried with edamame, carrots, scallions, and soy sauce",
		Ingredients: []string{"rice", "edamame", "carrot", "scallion", "soy sauce"},
	},
	{
		Name:        "Coconut Lentil Dahl",
		Description: "Creamy red lentil dahl simmered with coconut milk and warm spices",
		Ingredients: []string{"red lentils", "coconut milk", "turmeric", "cumin", "garlic"},
	},
	{
		Name:        "Chickpea Shawarma Bowl",
		Description: "Roasted chickpeas with cumin and lemon over greens with tahini drizzle",
		Ingredients: []string{"chickpea", "cumin", "lemon", "greens", "tahini"},
	},
	{
		Name:        "Turkey Sandwich",
		Description: "Sliced turkey with lettuce, tomato, and mayo on whole wheat bread",
		Ingredients: []string{"turkey", "lettuce", "tomato", "mayo", "egg"},
	},
	{
		Name:        "Fish and Chips",
		Description: "Battered cod fillets with crispy french fries and tartar sauce",
		Ingredients: []string{"fish", "potato"},
	},
	{
		Name:        "Pasta Carbonara",
		Description: "Pasta with eggs, pancetta, parmesan, and black pepper",
		Ingredients: []string{"pasta", "egg", "pancetta", "pork", "parmesan", "dairy"},
	},
	{
		Name:        "Grilled Shrimp Skewers",
		Description: "Shrimp marinated in garlic and lemon, grilled on skewers",
		Ingredients: []string{"shrimp", "seafood", "garlic", "lemon"},
	},
	{
		Name:        "Beef Tacos",
		Description: "Seasoned ground beef in corn tortillas with salsa and cheese",
		Ingredients: []string{"beef", "corn tortilla", "salsa", "cheese", "dairy"},
	},
	{
		Name:        "Roast Duck",
		Description: "Duck roasted with orange glaze, served with roasted vegetables",
		Ingredients: []string{"duck"},
	},
	{
		Name:        "Pepperoni Pizza",
		Description: "Thin crust pizza topped with pepperoni and mozzarella",
		Ingredients: []string{"pepperoni", "pork", "mozzarella", "dairy", "pizza"},
	},
	{
		Name:        "Bacon Cheeseburger",
		Description: "Beef patty with bacon, cheddar, and BBQ sauce",
		Ingredients: []string{"beef", "bacon", "pork", "cheddar", "dairy", "bun"},
	},
	{
		Name:        "Vegetable Omelette",
		Description: "Eggs folded with spinach, mushrooms, and cheese",
		Ingredients: []string{"egg", "spinach", "mushroom", "cheese", "dairy"},
	},
	{
		Name:        "Barbecue Ribs",
		Description: "Pork ribs slow-cooked in BBQ sauce, fall-off-the-bone tender",
		Ingredients: []string{"pork", "ribs"},
	},
	{
		Name:        "Tuna Salad",
		Description: "Canned tuna mixed with mayo, celery, and onions, served on lettuce",
		Ingredients: []string{"tuna", "fish", "mayo", "egg", "celery", "onion"},
	},
	{
		Name:        "Chicken Caesar Salad",
		Description: "Grilled chicken over romaine lettuce with Caesar dressing and croutons",
		Ingredients: []string{"chicken", "romaine", "Caesar dressing", "anchovy", "fish", "parmesan", "dairy", "croutons"},
	},
	{
		Name:        "Lobster Pasta",
		Description: "Pasta with chunks of lobster in a creamy sauce",
		Ingredients: []string{"lobster", "seafood", "pasta", "cream", "dairy"},
	},
	{
		Name:        "Sausage Rolls",
		Description: "Puff pastry wrapped around seasoned sausage meat, baked until golden",
		Ingredients: []string{"sausage", "pork", "pastry"},
	},
	{
		Name:        "Buffalo Wings",
		Description: "Chicken wings coated in spicy buffalo sauce, served with ranch",
		Ingredients: []string{"chicken", "ranch", "dairy"},
	},
	{
		Name:        "Beef Stew",
		Description: "Tender beef chunks with carrots, potatoes, and onions in a rich broth",
		Ingredients: []string{"beef", "carrot", "potato", "onion"},
	},
	{
		Name:        "Ham and Egg Muffin",
		Description: "Ham and fried egg on an English muffin with cheese",
		Ingredients: []string{"ham", "pork", "egg", "cheese", "dairy", "muffin"},
	},
	{
		Name:        "Salmon Salad",
		Description: "Smoked salmon with mixed greens, capers, and dill dressing",
		Ingredients: []string{"salmon", "fish", "greens", "capers", "dill"},
	},
	{
		Name:        "Chicken Fried Rice",
		Description: "Rice stir-fried with chicken, eggs, and vegetables",
		Ingredients: []string{"chicken", "egg", "rice", "vegetables"},
	},
	{
		Name:        "Grilled Lamb Chops",
		Description: "Lamb chops seasoned with rosemary and garlic, grilled to medium-rare",
		Ingredients: []string{"lamb", "garlic", "rosemary"},
	},
	{
		Name:        "Chicken Alfredo Pasta",
		Description: "Creamy fettuccine with grilled chicken and parmesan",
		Ingredients: []string{"chicken", "pasta", "cream", "parmesan", "dairy"},
	},
	{
		Name:        "Beef Bulgogi Bowl",
		Description: "Marinated grilled beef over rice with scallions and sesame",
		Ingredients: []string{"beef", "soy sauce", "sesame", "scallion", "rice"},
	},
	{
		Name:        "Shrimp Scampi Linguine",
		Description: "Sautéed shrimp with garlic butter and lemon over linguine",
		Ingredients: []string{"shrimp", "butter", "garlic", "lemon", "dairy", "pasta"},
	},
	{
		Name:        "BBQ Pulled Pork Sandwich",
		Description: "Slow-cooked pulled pork with BBQ sauce on a toasted bun",
		Ingredients: []string{"pork", "bbq sauce", "bun"},
	},
	{
		Name:        "Lamb Kebab Plate",
		Description: "Grilled lamb skewers with pita and yogurt sauce",
		Ingredients: []string{"lamb", "pita", "yogurt", "dairy"},
	},
	{
		Name:        "Fish Tacos",
		Description: "Crispy fish in corn tortillas with cabbage slaw and lime crema",
		Ingredients: []string{"fish", "corn tortilla", "cabbage", "lime", "mayo", "egg"},
	},
	{
		Name:        "Turkey Club Sandwich",
		Description: "Sliced turkey, bacon, lettuce, tomato, and mayo on toasted bread",
		Ingredients: []string{"turkey", "bacon", "pork", "lettuce", "tomato", "mayo", "egg", "bread"},
	},
	{
		Name:        "Chicken Teriyaki Bowl",
		Description: "Grilled chicken with teriyaki glaze served over steamed rice",
		Ingredients: []string{"chicken", "soy sauce", "rice", "ginger"},
	},
	{
		Name:        "Prosciutto Flatbread",
		Description: "Flatbread topped with prosciutto, arugula, and mozzarella",
		Ingredients: []string{"prosciutto", "pork", "flatbread", "mozzarella", "dairy", "arugula"},
	},
	{
		Name:        "Seafood Paella",
		Description: "Spanish rice cooked with shrimp, mussels, and saffron",
		Ingredients: []string{"rice", "shrimp", "mussel", "seafood", "saffron"},
	},
}
