package founder

// TotalDays is the length of the challenge.
const TotalDays = 365

// DefaultChecklist is the built-in 8-item daily checklist, used whenever
// the document carries no custom checklist.
var DefaultChecklist = []ChecklistItem{
	{ID: "wake6am", Name: "Wake up at 6 AM", Icon: "⏰", Category: "routine", Points: 1},
	{ID: "morningWorkout", Name: "Morning workout (15 min)", Icon: "🏃", Category: "health", Points: 1},
	{ID: "deepWork", Name: "3 hours deep work", Icon: "💻", Category: "work", Points: 1},
	{ID: "contentPost", Name: "Post 1 Reel/Short", Icon: "📱", Category: "marketing", Points: 1},
	{ID: "healthyMeals", Name: "Healthy meals (no junk)", Icon: "🥗", Category: "health", Points: 1},
	{ID: "eveningWorkout", Name: "Evening workout (45 min)", Icon: "🏋️", Category: "health", Points: 1},
	{ID: "reflection", Name: "Reflection / Journal", Icon: "📝", Category: "growth", Points: 1},
	{ID: "sleep11pm", Name: "In bed by 11 PM", Icon: "😴", Category: "routine", Points: 1},
}

// Achievements is the badge catalog. Unlock predicates live in internal/derive.
var Achievements = []AchievementDef{
	{ID: "sevenDayStreak", Label: "7-Day Streak", Icon: "🔥", Description: "Complete 7 perfect days in a row"},
	{ID: "perfectWeek", Label: "Perfect Week", Icon: "⭐", Description: "A full week at maximum score"},
	{ID: "first1K", Label: "First ₹1K", Icon: "💰", Description: "Earn your first ₹1,000 revenue"},
	{ID: "first10K", Label: "First ₹10K", Icon: "💵", Description: "Cross ₹10,000 total revenue"},
	{ID: "hundredUsers", Label: "100 Users", Icon: "👥", Description: "Get 100 users on VerboficaAI"},
	{ID: "thirtyWorkouts", Label: "30 Workouts", Icon: "💪", Description: "Complete 30 workout sessions"},
	{ID: "fiftyContentPosts", Label: "50 Content Posts", Icon: "📱", Description: "Post 50 reels/shorts"},
	{ID: "twentyOneDayStreak", Label: "21-Day Streak", Icon: "🏆", Description: "21 perfect days - habit formed!"},
	{ID: "first50K", Label: "First ₹50K", Icon: "🤑", Description: "Cross ₹50,000 total revenue"},
	{ID: "hundredDays", Label: "100 Days Done", Icon: "💎", Description: "Complete 100 days of the challenge"},
	{ID: "twoHundredDays", Label: "200 Days Done", Icon: "👑", Description: "Complete 200 days — relentless!"},
	{ID: "yearComplete", Label: "365 Days", Icon: "🎯", Description: "Complete the full year. Legendary."},
}

// Quotes is the daily-quote rotation, selected deterministically by date.
var Quotes = []Quote{
	{Text: "While they sleep, you grind. While they party, you build. While they doubt, you ship.", Author: "Founder Mindset"},
	{Text: "Nobody's coming to save you. Get up, get out, and make it happen.", Author: "David Goggins"},
	{Text: "Your only competition is who you were yesterday. Destroy that person.", Author: "Founder OS"},
	{Text: "Obsessed is a word the lazy use to describe the dedicated.", Author: "Grant Cardone"},
	{Text: "Be so good they can't ignore you. Then ship again.", Author: "Steve Martin"},
	{Text: "The graveyard of startups is full of founders who 'tried their best.' Don't try — execute.", Author: "Founder Mindset"},
	{Text: "1% better every day = 37x better in a year. The math doesn't lie.", Author: "James Clear"},
	{Text: "You didn't come this far to only come this far.", Author: "Tom Brady"},
	{Text: "Revenue fixes everything. Ship the product, close the deal, repeat.", Author: "Founder OS"},
	{Text: "Pain is temporary. Regret is forever. Choose the grind.", Author: "Eric Thomas"},
	{Text: "Outwork everyone. Outlearn everyone. Outlast everyone. That's the playbook.", Author: "Founder Mindset"},
	{Text: "Every rejection is redirection. Every failure is data. Keep building.", Author: "Founder OS"},
	{Text: "The market doesn't care about your feelings. Ship fast, iterate faster.", Author: "Paul Graham"},
	{Text: "Discipline is choosing between what you want now and what you want most.", Author: "Abraham Lincoln"},
	{Text: "You're either building your dream or building someone else's. Wake up.", Author: "Founder Mindset"},
	{Text: "Most people overestimate what they can do in a day and underestimate what they can do in 365 days.", Author: "Bill Gates"},
	{Text: "Comfort is the enemy of growth. Stay uncomfortable, stay dangerous.", Author: "Founder OS"},
	{Text: "Don't wait for opportunity. Create it. Build it. Ship it. Now.", Author: "Founder Mindset"},
	{Text: "Code, content, and cold outreach — the founder's holy trinity.", Author: "Founder OS"},
	{Text: "You have exactly one life. Are you going to spend it scrolling or shipping?", Author: "Founder Mindset"},
}

// Moods are the selectable mood ids for a DayRecord.
var Moods = []string{"great", "happy", "neutral", "tired", "sad", "stressed"}

// FocusPreset is a work/break pairing for the focus timer.
type FocusPreset struct {
	Label string
	Work  int
	Break int
}

// FocusPresets are the built-in timer presets (minutes).
var FocusPresets = []FocusPreset{
	{Label: "Quick Focus", Work: 25, Break: 5},
	{Label: "Deep Work", Work: 50, Break: 10},
	{Label: "Marathon", Work: 90, Break: 20},
}

// Defaults returns a fresh document with seed values: the challenge anchor,
// two seed projects, the 13-month goal ladder, and empty maps everywhere else.
// Loaded or imported data is always overlaid onto this baseline so documents
// persisted by older versions pick up newly introduced fields.
func Defaults() *Document {
	return &Document{
		StartDate: "2026-03-01",
		Profile: Profile{
			Name:       "Randhir",
			Timezone:   "Asia/Calcutta",
			TargetDate: "2027-02-28",
			Avatar:     "🚀",
		},
		Days:            map[string]*DayRecord{},
		CustomChecklist: nil,
		Projects: map[string]*Project{
			"verboficaAI": {
				Name:        "VerboficaAI",
				Icon:        "📱",
				Description: "AI-powered language learning app",
				Tasks:       []ProjectItem{},
				Features:    []ProjectItem{},
				Bugs:        []ProjectItem{},
				History:     []KPISnapshot{},
			},
			"golubot": {
				Name:            "Golubot",
				Icon:            "🤖",
				Description:     "Smart home robot assistant",
				PrototypeStatus: "Design phase",
				Tasks:           []ProjectItem{},
				Features:        []ProjectItem{},
				Bugs:            []ProjectItem{},
				History:         []KPISnapshot{},
			},
		},
		Goals: Goals{
			Daily:  map[string]int{"deepWork": 3, "contentPosts": 1, "workouts": 2},
			Weekly: map[string]int{"featuresShipped": 2, "reelsPosted": 14, "perfectDays": 5},
			Monthly: map[string]PeriodGoal{
				"march_2026":     {Revenue: 5000, Users: 200, GolubotUnits: 3},
				"april_2026":     {Revenue: 65000, Users: 500, GolubotUnits: 10},
				"may_2026":       {Revenue: 162000, Users: 1000, GolubotUnits: 25},
				"june_2026":      {Revenue: 320000, Users: 1500, GolubotUnits: 50},
				"july_2026":      {Revenue: 400000, Users: 2000, GolubotUnits: 70},
				"august_2026":    {Revenue: 500000, Users: 2500, GolubotUnits: 90},
				"september_2026": {Revenue: 600000, Users: 3000, GolubotUnits: 110},
				"october_2026":   {Revenue: 750000, Users: 3500, GolubotUnits: 130},
				"november_2026":  {Revenue: 900000, Users: 4000, GolubotUnits: 150},
				"december_2026":  {Revenue: 1000000, Users: 4500, GolubotUnits: 170},
				"january_2027":   {Revenue: 1200000, Users: 5000, GolubotUnits: 190},
				"february_2027":  {Revenue: 1400000, Users: 5500, GolubotUnits: 210},
				"march_2027":     {Revenue: 1500000, Users: 6000, GolubotUnits: 230},
			},
			Quarterly: map[string]PeriodGoal{
				"q1": {Revenue: 232000, Users: 1700, GolubotUnits: 88},
			},
			Yearly: map[string]PeriodGoal{
				"2026": {Revenue: 500000, Users: 3000, GolubotUnits: 200},
			},
		},
		Lifestyle: Lifestyle{
			Sleep:    map[string]SleepEntry{},
			Workouts: map[string]WorkoutEntry{},
			Meals:    map[string]MealEntry{},
			Water:    map[string]int{},
		},
		Achievements: defaultAchievementFlags(),
		Journal:      map[string]*JournalEntry{},
		FocusSessions: []FocusSession{},
		DailyThoughts: map[string]string{},
		Medicine: Medicine{
			List: []MedicineDef{},
			Log:  map[string]map[int64]MedicineLog{},
		},
		MartialArts: MartialArts{
			Sessions: map[string]MartialArtsSession{},
			Goals:    []MartialArtsGoal{},
		},
		Settings: Settings{
			Theme:         "dark",
			Notifications: true,
			WeekStartsOn:  "monday",
		},
	}
}

func defaultAchievementFlags() map[string]bool {
	flags := make(map[string]bool, len(Achievements))
	for _, a := range Achievements {
		flags[a.ID] = false
	}
	return flags
}
