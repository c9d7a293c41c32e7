package skills

// defaultAliasTable maps canonical skill names to the lowercase surface forms
// they appear under in resumes and job descriptions.
var defaultAliasTable = map[string][]string{
	// Programming languages
	"Python":     {"python", "py", "python3"},
	"JavaScript": {"javascript", "js", "jsx"},
	"TypeScript": {"typescript", "ts", "tsx"},
	"Java":       {"java", "j2ee"},
	"C++":        {"c++", "cpp", "c plus plus"},
	"C#":         {"c#", "csharp", "dotnet"},
	"Go":         {"golang", "go"},
	"Rust":       {"rust", "rustlang"},
	"PHP":        {"php", "php7", "php8"},
	"Ruby":       {"ruby", "rails"},
	"Swift":      {"swift"},
	"Kotlin":     {"kotlin"},
	"Scala":      {"scala"},
	"SQL":        {"sql", "tsql", "pl/sql"},
	"HTML":       {"html", "html5"},
	"CSS":        {"css", "css3", "scss", "sass"},
	"Bash":       {"bash", "shell", "shellscript"},

	// Frontend
	"React":     {"react", "reactjs", "react.js"},
	"Vue.js":    {"vue", "vuejs", "vue.js"},
	"Angular":   {"angular", "angularjs"},
	"Next.js":   {"next.js", "nextjs"},
	"Svelte":    {"svelte"},
	"jQuery":    {"jquery"},
	"Bootstrap": {"bootstrap"},
	"Tailwind":  {"tailwind", "tailwindcss"},

	// Backend
	"Django":        {"django"},
	"Flask":         {"flask"},
	"FastAPI":       {"fastapi"},
	"Spring":        {"spring", "spring boot"},
	"Express.js":    {"express", "expressjs"},
	"Node.js":       {"node.js", "nodejs", "node"},
	"Laravel":       {"laravel"},
	"ASP.NET":       {"asp.net", "asp"},
	"Ruby on Rails": {"rails", "ruby on rails"},
	"NestJS":        {"nestjs", "nest.js"},

	// Databases
	"MongoDB":       {"mongodb", "mongo"},
	"PostgreSQL":    {"postgresql", "postgres", "psql"},
	"MySQL":         {"mysql", "mariadb"},
	"Redis":         {"redis"},
	"Cassandra":     {"cassandra"},
	"DynamoDB":      {"dynamodb"},
	"Firebase":      {"firebase", "firestore"},
	"SQL Server":    {"sql server", "mssql", "sqlserver"},
	"Oracle":        {"oracle database", "oracle"},
	"Elasticsearch": {"elasticsearch", "elastic"},
	"SQLite":        {"sqlite"},

	// Cloud
	"AWS":          {"aws", "amazon web services"},
	"Azure":        {"azure", "microsoft azure"},
	"Google Cloud": {"gcp", "google cloud", "google cloud platform"},
	"Heroku":       {"heroku"},
	"DigitalOcean": {"digitalocean", "digital ocean"},

	// DevOps
	"Docker":         {"docker", "dockerfile"},
	"Kubernetes":     {"kubernetes", "k8s", "k3s"},
	"Jenkins":        {"jenkins"},
	"GitLab CI":      {"gitlab ci", "gitlab-ci"},
	"GitHub Actions": {"github actions"},
	"Terraform":      {"terraform"},
	"Ansible":        {"ansible"},
	"nginx":          {"nginx"},
	"Helm":           {"helm"},
	"CI/CD":          {"ci/cd", "cicd", "continuous integration"},

	// Version control
	"Git":       {"git"},
	"GitHub":    {"github"},
	"GitLab":    {"gitlab"},
	"Bitbucket": {"bitbucket"},

	// AI / ML
	"Machine Learning": {"machine learning", "ml"},
	"Deep Learning":    {"deep learning", "dl"},
	"TensorFlow":       {"tensorflow"},
	"PyTorch":          {"pytorch", "torch"},
	"Keras":            {"keras"},
	"Scikit-learn":     {"scikit-learn", "sklearn"},
	"Pandas":           {"pandas"},
	"NumPy":            {"numpy"},
	"OpenCV":           {"opencv", "cv2"},
	"NLP":              {"nlp", "natural language processing"},
	"Computer Vision":  {"computer vision"},
	"XGBoost":          {"xgboost"},

	// Data engineering
	"Hadoop": {"hadoop", "apache hadoop"},
	"Spark":  {"spark", "apache spark", "pyspark"},
	"Kafka":  {"kafka", "apache kafka"},
	"ETL":    {"etl"},
	"Hive":   {"hive"},

	// APIs and protocols
	"REST API":  {"rest api", "rest", "restful"},
	"GraphQL":   {"graphql"},
	"gRPC":      {"grpc"},
	"WebSocket": {"websocket", "websockets"},
	"OAuth":     {"oauth", "oauth2"},
	"JWT":       {"jwt", "json web token"},

	// Testing
	"Jest":     {"jest"},
	"Pytest":   {"pytest"},
	"Selenium": {"selenium"},
	"Cypress":  {"cypress"},
	"JUnit":    {"junit"},

	// Messaging
	"RabbitMQ": {"rabbitmq"},
	"AWS SQS":  {"sqs", "aws sqs"},

	// Other
	"Linux":         {"linux", "ubuntu", "debian", "centos"},
	"Agile":         {"agile"},
	"Scrum":         {"scrum"},
	"JIRA":          {"jira"},
	"Microservices": {"microservices", "microservice"},
}

// Default returns the built-in alias-table knowledge base.
func Default() *KnowledgeBase {
	return NewAliasTable(defaultAliasTable)
}
