package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"

	"github.com/docuflow/idextract/db/ent/schema/utils"
)

type Document struct{ ent.Schema }

func (Document) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "documents"},
	}
}

func (Document) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.String("original_filename").NotEmpty(),
		// path of the normalized PNG in the file store
		field.String("stored_file_reference").NotEmpty(),
		field.String("document_type").NotEmpty().
			Validate(utils.EnumValidator("passport", "drivers_license", "ead_card")),
		field.Float32("classification_confidence").
			Min(0).Max(1).
			SchemaType(map[string]string{dialect.Postgres: "real"}),
		field.Time("created_at").Default(time.Now).Immutable(),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Document) Edges() []ent.Edge {
	return []ent.Edge{
		// ONE document -> MANY fields; fields never outlive the document
		edge.To("fields", Field.Type).
			Annotations(entsql.Annotation{OnDelete: entsql.Cascade}),
	}
}

func (Document) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("created_at"),
		index.Fields("document_type"),
	}
}
