package knowledge

// Table is the static FAQ knowledge base served by the chatbot. Keywords are
// hand-curated; keep them lowercase so the case-folded matching stays cheap.
var Table = []Entry{
	{
		Keywords: []string{"admission", "apply", "application", "how to apply", "requirements"},
		Category: "Admissions",
		Answer: "Admission applications are submitted through the portal under Applications. " +
			"You will need your transcripts, a valid means of identification and the application fee receipt. " +
			"Applications for the current session close six weeks before matriculation.",
		RelatedTopics: []string{"Application status", "Admission exercise", "School fees"},
	},
	{
		Keywords: []string{"admission exercise", "screening", "exam score", "aptitude test"},
		Category: "Admissions",
		Answer: "The admission exercise is a screening assessment scored by the admissions office. " +
			"Your score appears on your application record once grading is complete, and admitted " +
			"applicants receive an admission email with next steps.",
		RelatedTopics: []string{"Application status", "Acceptance fee"},
	},
	{
		Keywords: []string{"application status", "admitted", "check status"},
		Category: "Admissions",
		Answer: "You can check your application status on your dashboard under My Applications. " +
			"Statuses move from PENDING to SCORED after the admission exercise, then ADMITTED or REJECTED.",
	},
	{
		Keywords: []string{"course registration", "register courses", "add courses", "drop courses"},
		Category: "Registration",
		Answer: "Course registration opens on your dashboard once the active session and semester are " +
			"announced. Select the courses offered for your programme and submit; resubmitting replaces " +
			"your previous selection for the session entirely.",
		RelatedTopics: []string{"Academic calendar", "Credit hours", "Registration deadline"},
	},
	{
		Keywords: []string{"registration deadline", "late registration", "deadline"},
		Category: "Registration",
		Answer: "Course registration closes at the end of the third week of each semester. Late " +
			"registration attracts a penalty fee and requires approval from your programme coordinator.",
		RelatedTopics: []string{"Course registration", "Academic calendar"},
	},
	{
		Keywords: []string{"credit hours", "credit load", "units", "maximum units"},
		Category: "Registration",
		Answer: "Each course carries a fixed number of credit hours shown in the course list. " +
			"Masters students register between 18 and 24 credit hours per session; PGD students " +
			"between 15 and 21. Your coordinator must approve any overload.",
	},
	{
		Keywords: []string{"session", "semester", "academic calendar", "resumption"},
		Category: "Academic calendar",
		Answer: "The active academic session and semester are set by the registry and shown on your " +
			"dashboard. The academic calendar with resumption and examination dates is published " +
			"under Shared Documents.",
		RelatedTopics: []string{"Course registration", "Examinations"},
	},
	{
		Keywords: []string{"fees", "school fees", "tuition", "payment", "acceptance fee"},
		Category: "Fees",
		Answer: "School fees schedules per programme are published under Shared Documents. Payments " +
			"are made through the bank portal referenced on your invoice; upload your receipt under " +
			"Payments for confirmation within 48 hours.",
		RelatedTopics: []string{"Acceptance fee", "Late registration"},
	},
	{
		Keywords: []string{"project", "thesis", "dissertation", "past projects", "access code"},
		Category: "Projects",
		Answer: "Past projects and dissertations are available in the project archive. Access " +
			"requires a valid access code issued by your supervisor or the programme office; enter " +
			"it on the Projects page to browse the archive.",
		RelatedTopics: []string{"Supervision", "Shared documents"},
	},
	{
		Keywords: []string{"documents", "handbook", "forms", "download", "shared documents"},
		Category: "Shared documents",
		Answer: "Handbooks, forms and course material are available under Shared Documents. " +
			"Visibility depends on your role; log in with your student account to see student material.",
	},
	{
		Keywords: []string{"transcript", "result", "grades", "statement of result"},
		Category: "Records",
		Answer: "Transcript requests are processed by the examinations office. Submit a request " +
			"through the portal under Records; processing takes five working days and the transcript " +
			"is dispatched to the address you provide.",
	},
	{
		Keywords: []string{"password", "login", "forgot password", "cannot log in", "reset"},
		Category: "Portal support",
		Answer: "Use the Forgot Password link on the login page to reset your password by email. " +
			"If your account is locked after repeated attempts, wait fifteen minutes and try again, " +
			"or contact portal support.",
	},
	{
		Keywords: []string{"contact", "support", "help", "registry", "phone"},
		Category: "Portal support",
		Answer: "The registry help desk is open Monday to Friday, 9am to 4pm. Email " +
			"registry@portal.edu or visit the registry block, room 104, for issues the portal " +
			"cannot resolve.",
	},
}
