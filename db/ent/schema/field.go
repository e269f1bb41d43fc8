package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

type Field struct{ ent.Schema }

func (Field) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "fields"},
	}
}

func (Field) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		// explicit FK so we can define the composite unique index
		field.UUID("document_id", uuid.UUID{}),
		field.String("field_name").NotEmpty(),
		// value as extracted; NOT_FOUND sentinel when absent, never null
		field.String("original_value").
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.String("corrected_value").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.Bool("corrected").Default(false),
		field.Float32("confidence").
			Min(0).Max(1).
			SchemaType(map[string]string{dialect.Postgres: "real"}),
		field.String("error_message").Optional().Nillable(),
	}
}

func (Field) Edges() []ent.Edge {
	return []ent.Edge{
		// MANY fields -> ONE document (FK: fields.document_id)
		edge.From("document", Document.Type).
			Ref("fields").
			Field("document_id").
			Required().
			Unique(),
	}
}

func (Field) Indexes() []ent.Index {
	return []ent.Index{
		// field names are unique per document
		index.Fields("document_id", "field_name").Unique(),
	}
}
