package roadmap

import "github.com/jonathan/careerpath/internal/types"

// Stable action IDs. Generated roadmaps use these fixed identifiers so that
// generation stays deterministic; caller-added custom actions get UUIDs.
const (
	actionPM101            = "pm-fundamentals-101"
	actionLearnSQL         = "learn-sql"
	actionLevelUpSQL       = "level-up-sql"
	actionAnalytics        = "analytics-foundations"
	actionInternet         = "how-the-internet-works"
	actionProductTeardowns = "analyze-3-products"
	actionReadInspired     = "read-inspired"
	actionPMClub           = "pm-club"
	actionStudentProject   = "student-project"
	actionCaseWorkshop     = "case-study-workshop"
	actionInitiative       = "propose-initiative"
	actionUserInterviews   = "user-interviews"
	actionResumeRebuild    = "resume-rebuild"
	actionPortfolio        = "portfolio-site"
	actionMockInterviews   = "mock-interviews"
	actionApplications     = "application-campaign"
)

var pm101Tips = []string{
	"📝 Take notes on key concepts like product discovery, roadmapping, and stakeholder management",
	"❓ Jot down questions to research further or discuss with PMs you know",
	"🎯 After watching, write a 1-paragraph summary of what excites you most about PM",
	"💡 Pause and reflect: Can you identify PM skills you already use in your current role?",
}

var pm101Steps = []string{
	"Step 1: Block out 4 hours on your calendar for focused watching",
	`Step 2: Create a note document titled "PM Fundamentals - My Notes"`,
	"Step 3: For each module, write down: Key concept, Real-world example, How I could apply this",
	"Step 4: After completion, identify 2-3 concepts to explore deeper via articles or LinkedIn posts",
}

var learnSQLTips = []string{
	`🎯 Focus on business questions: "How many users signed up last month?" not just syntax memorization`,
	"💻 Practice with real datasets - download sample databases (Chinook DB for music, Northwind for e-commerce)",
	"📊 After learning each concept, try to answer a product question with it",
	"🔄 Review your notes weekly - SQL syntax is easy to forget without regular practice",
	"🏆 Challenge: By end of week 2, write 5 queries that answer real product questions",
	"💡 Connect to your domain: If you're in e-commerce, focus on transaction data; if social media, focus on user behavior",
}

var learnSQLSteps = []string{
	"Week 1: Master SELECT, WHERE, GROUP BY, ORDER BY - practice 30 min daily",
	"Week 1 Mini-Project: Query a sample e-commerce database to find top 10 products by revenue",
	"Week 2: Learn JOIN operations (INNER, LEFT, RIGHT) and aggregate functions (COUNT, SUM, AVG)",
	"Week 2 Mini-Project: Analyze user cohorts - who signed up when and their behavior patterns",
	`Final: Create a "SQL for PMs" cheat sheet with the 10 most useful queries for product analysis`,
	"Bonus: Join the #sql channel on Product School Slack and ask questions",
}

var learnSQLAlternatives = []types.Resource{
	{Name: "SQL for Data Analysis (Udacity)", URL: "https://www.udacity.com/course/sql-for-data-analysis--ud198"},
	{Name: "SQL Essential Training (LinkedIn Learning)", URL: "https://www.linkedin.com/learning/sql-essential-training-3"},
	{Name: "Mode SQL Tutorial (Free)", URL: "https://mode.com/sql-tutorial/"},
}

var analyticsTips = []string{
	"📊 Start with Excel if you're new to data - it's more accessible than Python",
	"🎯 Focus on metrics PMs actually use: conversion rate, retention, DAU/MAU, churn",
	"📈 Learn to create clear visualizations - a good chart tells the story",
	"🔢 Practice calculating these metrics yourself before using tools",
	`💡 Every analysis should answer: "So what? What action should we take?"`,
}

var analyticsSteps = []string{
	"Week 1: Learn data manipulation basics (filtering, sorting, grouping)",
	"Week 1 Exercise: Calculate conversion rate through a 5-step funnel",
	"Week 2: Learn visualization (charts, graphs, dashboards)",
	"Week 2 Exercise: Create a dashboard showing user engagement trends",
	"Week 3: Practice with a real dataset (Kaggle has good starter sets)",
	"Week 3 Project: Analyze an e-commerce dataset and present 3 insights",
}

var analyticsAlternatives = []types.Resource{
	{Name: "Excel to MySQL (Coursera)", URL: "https://www.coursera.org/learn/excel-mysql"},
	{Name: "Data Analysis Essentials (LinkedIn Learning)", URL: "https://www.linkedin.com/learning/data-analysis-essentials"},
}

var internetTips = []string{
	"🎨 Draw diagrams as you learn - visual learning sticks better than just reading",
	"🗣️ Practice explaining concepts out loud as if teaching a friend",
	"🏗️ For each concept (APIs, databases, servers), find a real product example",
	`💡 Ask yourself: "How does Instagram use this?" to make concepts concrete`,
	"📱 Trace a user action (e.g., posting a photo) through the full technical stack",
	"🤝 If you have engineer friends, ask them to explain their system architecture",
}

var internetSteps = []string{
	"Day 1-2: Read the full Leland guide, highlight unfamiliar terms",
	"Day 3: Create a glossary of 10 key technical terms with simple definitions",
	"Day 4: Diagram a simple system (like Twitter) showing front-end, back-end, database, API",
	"Day 5: Practice explaining 3 concepts to a non-technical friend (test your understanding)",
	"Day 6-7: Read 2-3 engineering blog posts from tech companies to see concepts in action",
	`Bonus: Watch "System Design for Beginners" videos on YouTube`,
}

var teardownTips = []string{
	"📱 Pick products you use every single day - you know them deeply",
	`❓ Ask "why?" 5 times for each feature - dig into the underlying reasoning`,
	"🎯 Focus on ONE user journey per product - go deep, not broad",
	"💰 Research the business model - read their earnings calls or tech crunch articles",
	"🆚 Compare to 2-3 competitors - what makes this product different?",
	`📊 Hypothesize metrics: What does "success" look like for this feature?`,
	`🤔 Think about trade-offs: "They chose X over Y because..."`,
}

var teardownSteps = []string{
	"Day 1: Pick 3 apps (recommend: 1 social, 1 productivity, 1 marketplace/e-commerce)",
	"Day 2: For Product 1, complete the full analysis template (see below)",
	"Day 3: For Product 2, complete the full analysis",
	"Day 4: For Product 3, complete the full analysis",
	"Day 5: Review all three, identify common patterns in good product design",
	"Day 6: Get feedback from a PM or mentor - share your analyses",
	"Day 7: Refine based on feedback, add to portfolio",
}

const teardownHowTo = `Pick 3 apps you use (e.g., Spotify, Uber, Instagram). For each, document:

1. Core Features: List 5-8 main features and why each exists
2. User Flows: Map out 2-3 key user journeys (screenshots help!)
3. Business Model: How does it make money? What are the metrics that matter?
4. Improvements: What would you change and why? What's the trade-off?
5. Competitive Landscape: Who are the competitors and what makes this product different?

Create a simple slide deck or Google Doc for each analysis. These become portfolio pieces you can reference in interviews when asked "tell me about a product you love."`

var inspiredTips = []string{
	"📖 Read 10-15 pages daily - consistency beats marathon sessions",
	"✏️ Take notes in your own words - don't just highlight",
	`🤔 After each chapter, ask: "How does this apply to my current/target role?"`,
	"💬 Discuss concepts with a PM friend or in online communities",
	"🎯 Focus on Part I (Product Management) first - it's most foundational",
}

var inspiredSteps = []string{
	"Week 1: Read Part I (Chapters 1-15) on product principles - 30 min/day",
	"Week 2: Read Part II (Chapters 16-30) on product discovery - 30 min/day",
	"Week 3: Read Part III (Chapters 31-45) on product delivery - 30 min/day",
	`Throughout: Maintain a "PM Concepts" document with definitions and examples`,
	"End of Week 3: Write 1-page reflection on top learnings",
}

const inspiredHowTo = `Reading guide:

Chapters 1-15: Core product management principles (focus here first)
Chapters 16-30: Product discovery techniques
Chapters 31-45: Product delivery and team dynamics

Take notes on:
- Key frameworks (e.g., opportunity assessment, customer discovery)
- Examples of good vs bad product management
- Questions you have about concepts

After reading, write a 1-page summary of the top 3 lessons and how you'd apply them. This becomes a talking point in interviews when asked about PM philosophy.`

var inspiredStudyGuide = &types.StudyGuide{
	Overview: "This study guide breaks down Inspired into actionable lessons. Read 10-15 pages daily and complete the reflection questions to deepen your understanding of product management fundamentals.",
	Chapters: []types.StudyGuideSection{
		{
			Section:   "Part I: Chapters 1-15 - Core PM Principles",
			Timeframe: "Week 1",
			KeyTopics: []string{
				"The role of product management vs project management",
				"Product discovery vs product delivery",
				"Outcome-based roadmaps instead of feature roadmaps",
				"Empowered product teams and how they operate",
				"Product/Market Fit and why it matters",
			},
			ReflectionQuestions: []string{
				`How does your current team compare to an "empowered product team"?`,
				"What's one change you could advocate for to move toward outcome-based planning?",
				"Identify a recent product decision - was it discovery-driven or delivery-driven?",
				`What does "fall in love with the problem, not the solution" mean to you?`,
			},
			ActionItems: []string{
				`Write a 1-page memo: "What makes a great product team?" based on Chapters 1-15`,
				"Identify 3 products you admire and hypothesize how they do product discovery",
				"Create a comparison table: Discovery mindset vs Delivery mindset",
				"List 3 ways your current role overlaps with PM responsibilities Cagan describes",
			},
		},
		{
			Section:   "Part II: Chapters 16-30 - Product Discovery",
			Timeframe: "Week 2",
			KeyTopics: []string{
				"Customer interviews and user research techniques",
				"Rapid prototyping and testing assumptions",
				"Opportunity assessment framework",
				"Story mapping and user story slicing",
				"Validating ideas quickly with minimal resources",
			},
			ReflectionQuestions: []string{
				"Have you done customer discovery for any project? What did you learn?",
				"What's a product assumption you have that needs validation?",
				"How could you test an idea in 1 week with minimal resources?",
				`What's the difference between "Can we build it?" and "Should we build it?"`,
			},
			ActionItems: []string{
				"Practice: Write an opportunity assessment for a product idea you have",
				`Conduct 3 "discovery interviews" with friends/colleagues about a problem space`,
				"Create a simple prototype (even paper) for a small feature idea",
				"List 10 questions you'd ask users to validate a product hypothesis",
			},
		},
		{
			Section:   "Part III: Chapters 31-45 - Product Delivery & Culture",
			Timeframe: "Week 3",
			KeyTopics: []string{
				"Working effectively with engineering and design",
				"Product roadmaps and prioritization frameworks",
				"Stakeholder management and communication",
				"Building product culture and team dynamics",
				"Scaling product management in organizations",
			},
			ReflectionQuestions: []string{
				"How do you currently prioritize work? How could you improve using Cagan's frameworks?",
				"Who are the key stakeholders for products you work on? How do you manage relationships?",
				`What aspects of "product culture" resonate most with you and why?`,
				"How would you handle a conflict between what users want and what engineering wants to build?",
			},
			ActionItems: []string{
				"Create a prioritization framework for your current projects using concepts from the book",
				"Map out stakeholders and their interests for a recent project or initiative",
				`Write your "PM philosophy" statement in 1 paragraph incorporating book concepts`,
				"Identify one cultural change at your current company that would improve product outcomes",
			},
		},
	},
	FinalProject: "After finishing the book, create a 3-page summary document:\n\n1. **Top 10 Lessons Learned** - List the most impactful concepts with brief explanations\n2. **How I'll Apply These** - For each lesson, write 1-2 sentences on how you'll use it in your PM journey\n3. **Concepts to Explore Deeper** - Identify 5 topics you want to research further\n4. **My PM Philosophy** - Write a 1-paragraph statement on your product management approach informed by this book\n\nShare this summary with a PM mentor or in a PM community (like Leland) for feedback. Use it as a talking point in interviews when asked about your PM knowledge!",
}

var pmClubTips = []string{
	`🔍 Search "[Your University] product management club" on Google, LinkedIn, and your school's org directory`,
	"🏆 Look for PM case competitions: PM National Competition, RookieUp, local hackathons",
	"🤝 If no club exists, start one! You only need 5-10 interested students",
	"📅 Commit to attending at least 2 events per month to build relationships",
	"💼 Leverage your career center to connect with PM alumni",
	"🎯 Don't just attend - volunteer to organize events or lead initiatives",
	"📱 Join the club's Slack/Discord and actively participate in discussions",
}

var pmClubSteps = []string{
	"Week 1: Research - check your school's student org directory for existing PM clubs",
	"Week 1: Join Product Management Club groups on LinkedIn and Facebook",
	"Week 2: If club exists - attend first meeting, introduce yourself, volunteer for a role",
	"Week 2: If no club - recruit 4-5 passionate co-founders via class GroupMe/Slack",
	"Week 3: Sign up for upcoming PM case competition with a team (teams of 3-4)",
	"Ongoing: Attend events, practice cases weekly, network with guest speakers",
	"Month 2: Take on leadership role - event coordinator, case practice lead, etc.",
}

var studentProjectTips = []string{
	"🎯 Pick a problem YOU personally experience - authenticity matters in your story",
	"👥 Recruit a small team (2-3 people max) with complementary skills (designer, developer, or analyst)",
	"📊 Focus on learning and measuring impact, not creating a perfect product",
	"📝 Document everything as you go - you'll need this for your resume and portfolio",
	"🗣️ Present your final project to PM club, class, or at a campus showcase",
	"💡 Start small and focused - better to solve 1 problem well than 5 problems poorly",
	"📈 Define success metrics BEFORE you start building anything",
}

var studentProjectSteps = []string{
	`Week 1: Identify problem space (e.g., "Campus dining wait times", "Study group coordination")`,
	"Week 2: Conduct 10 user interviews with fellow students about the problem",
	"Week 3: Create 3 different solution concepts, get feedback on each from 5-10 students",
	"Week 4: Build a low-fidelity prototype (Figma mockups, paper prototypes, or simple landing page)",
	"Week 5-6: Test prototype with 15-20 users, iterate based on their feedback",
	`Week 7: Calculate your impact metrics (e.g., "Reduced coordination time by 40%")`,
	"Week 8: Create final presentation and portfolio case study",
	"Bonus: Submit to product showcase or competition",
}

var caseWorkshopTips = []string{
	"🎯 Treat workshops like real interviews - time yourself strictly",
	"🗣️ Practice out loud - articulating your thinking is harder than thinking it",
	"📝 After each case, write self-critique: What went well? What would you improve?",
	"👥 Find a partner to practice with and give each other honest feedback",
	"🔄 Repeat cases you struggle with - repetition builds confidence and muscle memory",
	"📊 Learn frameworks (CIRCLES for product design, SWOT for strategy) but don't be robotic",
	"💭 Think out loud during practice - interviewers want to see your thought process",
}

var caseWorkshopSteps = []string{
	"Session 1: Watch workshop, learn case frameworks (market sizing, product design, strategy)",
	"Between sessions: Practice 1-2 cases daily for 15-20 minutes",
	"Session 2: Practice 3 product design cases with strict timing (30 min each)",
	"Session 3: Practice 2 strategy/business cases, get peer or coach feedback",
	"Session 4: Do full mock interview simulating real interview conditions",
	"After completion: Keep practicing 2-3 cases per week until interviews start",
}

var caseWorkshopAltTips = []string{
	"🎯 Treat workshops like real interviews - time yourself strictly",
	"🗣️ Practice out loud - articulating your thinking is harder than thinking it",
	"📝 After each case, write self-critique: What went well? What would you improve?",
	"👥 Find a partner or coach to practice with and get honest feedback",
	"🔄 Repeat difficult cases - repetition builds confidence",
	"📊 Learn frameworks but adapt them - don't sound robotic",
	"💭 Think out loud - interviewers want to see your thought process",
}

var caseWorkshopAltSteps = []string{
	"Session 1: Learn case frameworks (CIRCLES, market sizing, strategy)",
	"Between: Practice 1-2 cases daily for 15-20 minutes",
	"Session 2: Practice 3 product design cases with timing",
	"Session 3: Practice strategy/analytical cases",
	"Session 4: Full mock interview simulation",
	"Ongoing: 2-3 cases per week until interview ready",
}

var initiativeTips = []string{
	"🎯 Start small - pick something achievable in 8-12 weeks, not a year-long project",
	"💡 Look for pain points everyone complains about but nobody has time to fix",
	`📊 Pitch with data - "X% of users report this issue" or "We lose Y hours/week to this"`,
	"🤝 Get a sponsor - find a manager/director who will champion your idea",
	"📈 Define success metrics upfront so you can prove impact on your resume",
	"🗓️ Start with a pilot or MVP - don't try to boil the ocean",
	"💬 Communicate progress weekly - keep stakeholders informed",
}

var initiativeSteps = []string{
	"Week 1: Identify opportunity - what inefficiency, user pain, or gap exists?",
	"Week 2: Gather data - user surveys, interviews, analytics to quantify the problem",
	"Week 3: Draft 1-page proposal (see template in tips) with problem, solution, metrics",
	"Week 4: Present to manager and get buy-in + resources",
	"Week 5-10: Execute - assemble team, create timeline, ship incremental improvements",
	"Week 11-12: Measure results, gather testimonials, create case study",
	"Throughout: Document all decisions, learnings, and metrics for your portfolio",
}

var interviewsTips = []string{
	"🎯 Focus on understanding WHY users do things, not collecting feature requests",
	"👂 Listen 80%, talk 20% - let silence be your friend, people will fill it with insights",
	"📝 Take detailed notes but ALSO record (with permission) to catch nuances you miss",
	`❓ Use open-ended questions: "Tell me about..." not "Do you like..."`,
	"🔍 Look for patterns across 5+ interviews before drawing conclusions",
	`💡 Ask about past behavior, not future hypotheticals - "Tell me about the last time..." is gold`,
	"🚫 Don't pitch your solution during discovery - you'll bias their answers",
}

var interviewsSteps = []string{
	`Step 1: Define research goal (e.g., "Understand pain points in [X] workflow")`,
	"Step 2: Recruit 10-15 participants - mix of user types (power users, casual, churned)",
	"Step 3: Create interview guide with 8-10 open-ended questions (see template in tips)",
	"Step 4: Conduct interviews (30-45 min each), record with permission, take notes",
	"Step 5: After each interview, write down immediate observations",
	"Step 6: Synthesize all findings - look for themes, create affinity map, pull key quotes",
	"Step 7: Present insights to team with 3-5 key findings and recommendations",
	"Step 8: Document learnings in a portfolio case study",
}

var resumeRebuildTips = []string{
	"📊 Every bullet should follow: [Action Verb] + [What you did] + [How you did it] + [Quantified Impact]",
	`💯 Use numbers even if estimated: "~200 users", "Improved by 30%", "Saved 5 hrs/week"`,
	`🎯 Focus on outcomes, not activities: "Increased retention 15%" NOT "Sent emails to users"`,
	`✂️ Cut buzzwords like "innovative", "passionate", "team player" - show, don't tell`,
	"👀 Get 3 people to review your resume and give specific, actionable feedback",
	`🔢 If you can't quantify, describe scope: "Led 5-person team", "Managed $50K budget"`,
	"⚡ Start bullets with strong verbs: Led, Built, Increased, Reduced, Designed, Analyzed",
}

var resumeRebuildSteps = []string{
	"Day 1: List all your experiences and extract every current bullet point",
	`Day 2: For each bullet, ask "So what? What was the actual impact?"`,
	"Day 3: Transform bullets using formula: Action + What + How + Impact",
	`Day 4: Add metrics - estimate if needed ("~50% faster", "saved 5 hrs/week", "100+ users")`,
	"Day 5: Cut to 1 page (2 pages if 5+ years experience), remove all fluff",
	"Day 6: Get feedback from 2-3 people (PM, recruiter friend, or Leland coach)",
	"Day 7: Final polish - check formatting, remove typos, export as PDF",
	"Bonus: Run through ATS checker tool to ensure it passes resume screening software",
}

var portfolioTips = []string{
	"🎨 Use free tools: Notion (easiest), Webflow, Carrd, or Google Sites - don't overthink the platform",
	"📸 Include visuals - mockups, diagrams, data charts make it professional",
	"🔗 Make it easy to find - add link prominently to LinkedIn headline and resume header",
	"📱 Test on mobile - 40%+ of recruiters will view on phones",
	"🔄 Update quarterly with new projects and learnings",
	"💡 Quality over quantity - 2 great case studies beats 5 mediocre ones",
	"🎯 Tailor case studies to roles you want - applying to B2B SaaS? Show a B2B case study",
}

var portfolioSteps = []string{
	"Week 1: Choose platform (recommend Notion for beginners) and set up basic structure",
	`Week 1: Write "About Me" - your PM story in 150 words, why PM excites you`,
	"Week 2: Create Case Study #1 - your strongest project with full analysis",
	"Week 2: Create Case Study #2 - shows different skills (e.g., if #1 is technical, make #2 user research-focused)",
	"Week 3: Optional: Add Case Study #3, side project, or thought piece",
	"Week 3: Add contact section, LinkedIn link, resume download button",
	"Final: Share with 5 people for feedback, iterate based on comments",
	"Launch: Post on LinkedIn announcing your portfolio, ask your network to check it out",
}

var mockInterviewTips = []string{
	"📹 Record yourself practicing - watching back is uncomfortable but extremely valuable",
	"⏱️ Practice under real time pressure - most PM interviews have strict time limits",
	`🎯 Get specific feedback: Ask "What was unclear?" "Where did I lose you?" "What would you change?"`,
	"🔄 Do the same case twice - once to learn, second time to improve",
	`📝 Keep a "feedback log" tracking patterns in what you need to work on`,
	`💬 Practice the 2-minute "tell me about yourself" story until it's natural`,
	"🧠 Focus on thinking out loud - interviewers care more about HOW you think than the final answer",
}

var mockInterviewSteps = []string{
	"Interview 1 (Week 1): Product design case - get baseline feedback",
	"Interview 2 (Week 2): Strategy/business case",
	"Interview 3 (Week 2): Metrics/analytical case",
	"Interview 4 (Week 3): Behavioral questions + leadership scenarios",
	"Interview 5 (Week 4): Full interview loop simulation combining all types",
	"Between each: Practice specific weak areas for 30 min daily",
	"After all 5: Review all feedback, identify top 3 patterns, create action plan",
}

var applicationTips = []string{
	"🎯 Quality over quantity - 1 tailored application beats 10 spray-and-pray",
	"🔗 Find referrals on LinkedIn - internal referrals increase callback rates 5-10x",
	"📊 Track everything in spreadsheet: company, date, status, contacts, next steps",
	"📧 Follow up 1 week after applying with a personalized message to recruiter",
	"🤝 Attend PM events, meetups, and webinars to build relationships (not just apply online)",
	`💬 Message template: "Hi [Name], I applied for PM role at [Company]. Love your [specific product]. Could we chat 15 min about your experience?"`,
	"🎨 Customize your resume for EACH application - highlight relevant experience",
	"📈 Apply in batches - 10-15 per week is sustainable while working/studying",
}

var applicationSteps = []string{
	"Week 1: Build target company list (30-50 companies across 3 tiers: reach, fit, backup)",
	"Week 1: Research each company - read about products, values, recent news",
	"Week 2-3: Apply to 10-15 per week with customized resumes and cover letters where needed",
	"Week 2-3: For each application, find 1-2 employees on LinkedIn, send connection requests with personalized notes",
	"Week 4-6: Follow up on applications, continue applying, prepare for interviews as they come",
	"Week 4-6: Request informational interviews with PMs at target companies",
	"Throughout: Document learnings, update resume based on feedback, refine your pitch",
	"Networking: Attend 1-2 PM events or webinars per week, post about your PM journey on LinkedIn",
}
