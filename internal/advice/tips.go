package advice

// categoryTips maps a top spending category to its advisory sentence.
// Categories outside this table fall back to genericTip. The table is
// pure data so adding a category is a one-line change.
var categoryTips = map[string]string{
	"Groceries":     "Try meal planning and buying in bulk to save on your Groceries. Check for weekly flyers!",
	"Restaurants":   "Your spending on Restaurants is high. Consider cooking at home or bringing lunch to work 3-4 times a week.",
	"Transport":     "Look into carpooling or using public transportation more often to reduce your Transport costs.",
	"Shopping":      "Before making a purchase under Shopping, apply the 30-day rule: if you still want it after 30 days, buy it.",
	"Entertainment": "Seek out free or low-cost Entertainment options like local parks, libraries, or free community events.",
	"Utilities":     "Reduce your Utilities bill by being mindful of energy use. Unplug devices and turn off lights when not in use.",
	"Rent":          "Rent is a fixed cost. Look for ways to reduce flexible spending to offset this major expense.",
}

const genericTip = "Always review your smallest, recurring expenses - they add up quickly!"
