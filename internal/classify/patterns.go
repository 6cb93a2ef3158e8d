package classify

// skillPattern maps a canonical skill name to the surface substrings that
// signal it. Matching is whole-substring containment on the lower-cased text,
// not word-boundary tokenization; a pattern matching inside a larger word
// still counts.
type skillPattern struct {
	skill    string
	patterns []string
}

// skillPatterns is ordered: detected skills are reported in this order.
var skillPatterns = []skillPattern{
	{"SQL", []string{"sql", "database query", "database queries", "postgresql", "mysql", "data extraction", "queried database", "writing queries", "query language", "relational database", "bigquery", "snowflake", "redshift"}},
	{"Python", []string{"python", "pandas", "numpy", "django", "flask", "jupyter", "py script", "python script"}},
	{"Excel", []string{"excel", "spreadsheet", "vlookup", "pivot table", "xlookup", "google sheets", "advanced formulas"}},
	{"Tableau", []string{"tableau", "data visualization", "dashboard", "visual analytics", "bi tool", "power bi", "looker", "data studio"}},
	{"PowerPoint", []string{"powerpoint", "presentation", "deck", "slide deck", "keynote", "google slides"}},
	{"Java", []string{"java", "spring boot", "jvm", "j2ee"}},
	{"JavaScript", []string{"javascript", "js", "node.js", "react", "vue", "angular", "typescript"}},
	{"React", []string{"react", "reactjs", "react.js", "jsx", "react native"}},
	{"Analytics", []string{"analytics", "data analysis", "analyzed data", "statistical analysis", "quantitative analysis", "metrics analysis"}},
	{"Data Analysis", []string{"data analysis", "analyzed data", "data analytics", "analyze trends", "data-driven", "metrics"}},
	{"Project Management", []string{"project management", "managed projects", "project lead", "project coordination", "agile", "scrum master", "jira", "asana", "roadmap"}},
	{"Communication", []string{"communication", "presented", "stakeholder management", "cross-functional collaboration", "facilitated meetings", "executive presentations"}},
	{"Leadership", []string{"leadership", "led team", "managed team", "mentored", "supervised", "team lead", "directed"}},
	{"Research", []string{"research", "researched", "conducted research", "market research", "competitive analysis"}},
	{"Google Analytics", []string{"google analytics", "ga4", "web analytics", "analytics tracking", "utm parameters"}},
	{"Figma", []string{"figma", "design tool", "prototyping", "ui design", "mockup"}},
	{"Git", []string{"git", "github", "gitlab", "version control", "bitbucket", "source control"}},
	{"AWS", []string{"aws", "amazon web services", "ec2", "s3", "lambda", "cloud infrastructure"}},
	{"GCP", []string{"gcp", "google cloud", "cloud platform", "google cloud platform"}},
	{"Agile", []string{"agile", "scrum", "sprint", "kanban", "agile methodology", "iterative development"}},
	{"Scrum", []string{"scrum", "scrum master", "sprint planning", "daily standup", "retrospective"}},
	{"A/B Testing", []string{"a/b test", "ab test", "split test", "multivariate test", "experiment", "experimentation", "variant testing", "conversion optimization"}},
	{"User Research", []string{"user research", "user interview", "customer interview", "usability test", "user testing", "ethnographic research", "field research", "user feedback", "customer insights"}},
	{"Wireframing", []string{"wireframe", "wireframing", "mockup", "prototype", "low-fidelity", "sketch", "design mockup"}},
	{"Product Strategy", []string{"product strategy", "product vision", "product roadmap", "strategic planning", "go-to-market", "market strategy", "product planning", "competitive strategy"}},
}
