// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AnswerEventsColumns holds the columns for the "answer_events" table.
	AnswerEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "batch_id", Type: field.TypeString, Default: ""},
		{Name: "user_answer", Type: field.TypeString},
		{Name: "correct", Type: field.TypeBool},
		{Name: "question_id", Type: field.TypeInt},
	}
	// AnswerEventsTable holds the schema information for the "answer_events" table.
	AnswerEventsTable = &schema.Table{
		Name:       "answer_events",
		Columns:    AnswerEventsColumns,
		PrimaryKey: []*schema.Column{AnswerEventsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "answer_events_quiz_questions_answers",
				Columns:    []*schema.Column{AnswerEventsColumns[6]},
				RefColumns: []*schema.Column{QuizQuestionsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "answerevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{AnswerEventsColumns[1]},
			},
			{
				Name:    "answerevent_batch_id",
				Unique:  false,
				Columns: []*schema.Column{AnswerEventsColumns[3]},
			},
			{
				Name:    "answerevent_correct",
				Unique:  false,
				Columns: []*schema.Column{AnswerEventsColumns[5]},
			},
		},
	}
	// DomainsColumns holds the columns for the "domains" table.
	DomainsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "name", Type: field.TypeString},
		{Name: "section_number", Type: field.TypeInt},
		{Name: "exam_weight", Type: field.TypeFloat64, Default: 0},
		{Name: "description", Type: field.TypeString, Default: ""},
	}
	// DomainsTable holds the schema information for the "domains" table.
	DomainsTable = &schema.Table{
		Name:       "domains",
		Columns:    DomainsColumns,
		PrimaryKey: []*schema.Column{DomainsColumns[0]},
	}
	// FlashcardsColumns holds the columns for the "flashcards" table.
	FlashcardsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "front", Type: field.TypeString, Size: 2147483647},
		{Name: "back", Type: field.TypeString, Size: 2147483647},
		{Name: "source", Type: field.TypeString, Default: "seeded"},
		{Name: "ease_factor", Type: field.TypeFloat64, Default: 2.5},
		{Name: "interval", Type: field.TypeInt, Default: 0},
		{Name: "repetitions", Type: field.TypeInt, Default: 0},
		{Name: "next_review", Type: field.TypeTime, Nullable: true},
		{Name: "domain_id", Type: field.TypeInt},
		{Name: "subtopic_id", Type: field.TypeInt, Nullable: true},
	}
	// FlashcardsTable holds the schema information for the "flashcards" table.
	FlashcardsTable = &schema.Table{
		Name:       "flashcards",
		Columns:    FlashcardsColumns,
		PrimaryKey: []*schema.Column{FlashcardsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "flashcards_domains_flashcards",
				Columns:    []*schema.Column{FlashcardsColumns[8]},
				RefColumns: []*schema.Column{DomainsColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "flashcards_subtopics_flashcards",
				Columns:    []*schema.Column{FlashcardsColumns[9]},
				RefColumns: []*schema.Column{SubtopicsColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "flashcard_next_review",
				Unique:  false,
				Columns: []*schema.Column{FlashcardsColumns[7]},
			},
		},
	}
	// QuizQuestionsColumns holds the columns for the "quiz_questions" table.
	QuizQuestionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "stem", Type: field.TypeString, Size: 2147483647},
		{Name: "choice_a", Type: field.TypeString, Size: 2147483647},
		{Name: "choice_b", Type: field.TypeString, Size: 2147483647},
		{Name: "choice_c", Type: field.TypeString, Size: 2147483647},
		{Name: "choice_d", Type: field.TypeString, Size: 2147483647},
		{Name: "correct_answer", Type: field.TypeString},
		{Name: "explanation", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "source", Type: field.TypeString, Default: "seeded"},
		{Name: "domain_id", Type: field.TypeInt},
		{Name: "subtopic_id", Type: field.TypeInt, Nullable: true},
	}
	// QuizQuestionsTable holds the schema information for the "quiz_questions" table.
	QuizQuestionsTable = &schema.Table{
		Name:       "quiz_questions",
		Columns:    QuizQuestionsColumns,
		PrimaryKey: []*schema.Column{QuizQuestionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "quiz_questions_domains_questions",
				Columns:    []*schema.Column{QuizQuestionsColumns[9]},
				RefColumns: []*schema.Column{DomainsColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "quiz_questions_subtopics_questions",
				Columns:    []*schema.Column{QuizQuestionsColumns[10]},
				RefColumns: []*schema.Column{SubtopicsColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
	}
	// ReviewEventsColumns holds the columns for the "review_events" table.
	ReviewEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "batch_id", Type: field.TypeString, Default: ""},
		{Name: "rating", Type: field.TypeInt},
		{Name: "flashcard_id", Type: field.TypeInt},
	}
	// ReviewEventsTable holds the schema information for the "review_events" table.
	ReviewEventsTable = &schema.Table{
		Name:       "review_events",
		Columns:    ReviewEventsColumns,
		PrimaryKey: []*schema.Column{ReviewEventsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "review_events_flashcards_reviews",
				Columns:    []*schema.Column{ReviewEventsColumns[5]},
				RefColumns: []*schema.Column{FlashcardsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "reviewevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{ReviewEventsColumns[1]},
			},
			{
				Name:    "reviewevent_batch_id",
				Unique:  false,
				Columns: []*schema.Column{ReviewEventsColumns[3]},
			},
			{
				Name:    "reviewevent_rating",
				Unique:  false,
				Columns: []*schema.Column{ReviewEventsColumns[4]},
			},
		},
	}
	// SessionItemsColumns holds the columns for the "session_items" table.
	SessionItemsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "session_day", Type: field.TypeInt},
		{Name: "component", Type: field.TypeEnum, Enums: []string{"flashcard", "quiz"}},
		{Name: "item_id", Type: field.TypeInt},
	}
	// SessionItemsTable holds the schema information for the "session_items" table.
	SessionItemsTable = &schema.Table{
		Name:       "session_items",
		Columns:    SessionItemsColumns,
		PrimaryKey: []*schema.Column{SessionItemsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "sessionitem_session_day_component_item_id",
				Unique:  true,
				Columns: []*schema.Column{SessionItemsColumns[1], SessionItemsColumns[2], SessionItemsColumns[3]},
			},
		},
	}
	// SessionProgressesColumns holds the columns for the "session_progresses" table.
	SessionProgressesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "session_day", Type: field.TypeInt, Unique: true},
		{Name: "calendar_date", Type: field.TypeTime},
		{Name: "reading_done", Type: field.TypeBool, Default: false},
		{Name: "flashcards_done", Type: field.TypeBool, Default: false},
		{Name: "quiz_done", Type: field.TypeBool, Default: false},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
	}
	// SessionProgressesTable holds the schema information for the "session_progresses" table.
	SessionProgressesTable = &schema.Table{
		Name:       "session_progresses",
		Columns:    SessionProgressesColumns,
		PrimaryKey: []*schema.Column{SessionProgressesColumns[0]},
	}
	// StudyDaysColumns holds the columns for the "study_days" table.
	StudyDaysColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "day_number", Type: field.TypeInt, Unique: true},
		{Name: "reading_content", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "domain_id", Type: field.TypeInt, Nullable: true},
	}
	// StudyDaysTable holds the schema information for the "study_days" table.
	StudyDaysTable = &schema.Table{
		Name:       "study_days",
		Columns:    StudyDaysColumns,
		PrimaryKey: []*schema.Column{StudyDaysColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "study_days_domains_study_days",
				Columns:    []*schema.Column{StudyDaysColumns[3]},
				RefColumns: []*schema.Column{DomainsColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
	}
	// SubtopicsColumns holds the columns for the "subtopics" table.
	SubtopicsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "name", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Default: ""},
		{Name: "domain_id", Type: field.TypeInt},
	}
	// SubtopicsTable holds the schema information for the "subtopics" table.
	SubtopicsTable = &schema.Table{
		Name:       "subtopics",
		Columns:    SubtopicsColumns,
		PrimaryKey: []*schema.Column{SubtopicsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "subtopics_domains_subtopics",
				Columns:    []*schema.Column{SubtopicsColumns[3]},
				RefColumns: []*schema.Column{DomainsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
	}
	// UserSettingsColumns holds the columns for the "user_settings" table.
	UserSettingsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "key", Type: field.TypeString, Unique: true},
		{Name: "val", Type: field.TypeString},
	}
	// UserSettingsTable holds the schema information for the "user_settings" table.
	UserSettingsTable = &schema.Table{
		Name:       "user_settings",
		Columns:    UserSettingsColumns,
		PrimaryKey: []*schema.Column{UserSettingsColumns[0]},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AnswerEventsTable,
		DomainsTable,
		FlashcardsTable,
		QuizQuestionsTable,
		ReviewEventsTable,
		SessionItemsTable,
		SessionProgressesTable,
		StudyDaysTable,
		SubtopicsTable,
		UserSettingsTable,
	}
)

func init() {
	AnswerEventsTable.ForeignKeys[0].RefTable = QuizQuestionsTable
	FlashcardsTable.ForeignKeys[0].RefTable = DomainsTable
	FlashcardsTable.ForeignKeys[1].RefTable = SubtopicsTable
	QuizQuestionsTable.ForeignKeys[0].RefTable = DomainsTable
	QuizQuestionsTable.ForeignKeys[1].RefTable = SubtopicsTable
	ReviewEventsTable.ForeignKeys[0].RefTable = FlashcardsTable
	StudyDaysTable.ForeignKeys[0].RefTable = DomainsTable
	SubtopicsTable.ForeignKeys[0].RefTable = DomainsTable
}
