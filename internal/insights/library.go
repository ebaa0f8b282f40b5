package insights

import "github.com/bloatai/bloatiq/internal/quiz"

type categoryText struct {
	explanation string
	actions     []string
}

var library = map[quiz.Category]categoryText{
	quiz.CategoryAerophagia: {
		explanation: "Your answers point to swallowed air. Eating quickly, fizzy drinks, gum and straws all pull extra air into the stomach, which shows up as belching and upper-belly pressure soon after meals.",
		actions: []string{
			"Put your fork down between bites and aim for meals of at least 20 minutes.",
			"Swap carbonated drinks for still water for two weeks.",
			"Skip gum, straws and hard candy.",
		},
	},
	quiz.CategoryBrainGut: {
		explanation: "Your bloating tracks closely with stress and sleep. The gut and brain share a nerve highway, and stress can make the gut more sensitive to normal amounts of gas.",
		actions: []string{
			"Try five minutes of slow belly breathing before your largest meal.",
			"Keep a regular sleep window, even on weekends.",
			"Note stressful days in your symptom log to see whether flares follow.",
		},
	},
	quiz.CategoryDysbiosis: {
		explanation: "Your answers suggest the gut bacteria may be out of balance. Gas one to three hours after fermentable carbs, a growing list of trigger foods and recent antibiotics often go together.",
		actions: []string{
			"Log meals for two weeks to spot fermentable-carb triggers such as beans, onions, wheat and sugar alcohols.",
			"Ask a clinician whether a short low-FODMAP trial makes sense for you.",
			"Add variety slowly: one new plant food per week rather than many at once.",
		},
	},
	quiz.CategoryHormonal: {
		explanation: "Your bloating follows a hormonal pattern. Shifts in estrogen, progesterone or thyroid hormones change water balance and how quickly the gut moves.",
		actions: []string{
			"Track your cycle alongside your symptom log for two months.",
			"Cut back on very salty foods in the week before your period.",
			"If you have thyroid symptoms, ask your doctor about a thyroid check.",
		},
	},
	quiz.CategoryLifestyle: {
		explanation: "Daily habits look like a major driver. Late heavy meals, little movement, alcohol, low water intake and sudden jumps in fiber all slow digestion or add gas.",
		actions: []string{
			"Finish your last large meal at least three hours before bed.",
			"Take a 10 to 15 minute walk after your main meal.",
			"Raise fiber gradually and drink more water as you do.",
		},
	},
	quiz.CategoryMotility: {
		explanation: "Your answers suggest things are moving slowly. When stool or food sits longer than it should, gas builds up behind it and you feel full or swollen.",
		actions: []string{
			"Aim for a regular bathroom time, ideally after breakfast.",
			"Try a footstool under your feet on the toilet.",
			"Spread meals out and keep portions moderate if you fill up quickly.",
		},
	},
	quiz.CategoryStructural: {
		explanation: "Some answers point to a structural factor. Past surgery, hernias, endometriosis or pelvic floor issues can change how the belly wall and organs handle normal gas.",
		actions: []string{
			"Mention your surgical or pelvic history to your doctor when you discuss bloating.",
			"Ask about pelvic floor physical therapy if you have pressure or emptying problems.",
			"Notice whether posture changes, such as sitting upright, ease your symptoms.",
		},
	},
}

var riskHeadlines = map[quiz.RiskLevel]string{
	quiz.RiskLow:      "Your bloating profile looks mild",
	quiz.RiskModerate: "Your bloating has clear, workable drivers",
	quiz.RiskHigh:     "Your bloating is significant and worth a structured plan",
}

var riskSummaries = map[quiz.RiskLevel]string{
	quiz.RiskLow:      "Overall your answers show only light bloating drivers. Small adjustments around your top cause are likely enough.",
	quiz.RiskModerate: "Several drivers are contributing. Working on your top causes first usually gives the quickest relief.",
	quiz.RiskHigh:     "Many drivers scored high. Start with your top causes and consider reviewing the results with a clinician.",
}

const referralNotice = "Some of your answers are warning signs that need medical attention. Please see a doctor soon, and do not rely on this quiz alone."
