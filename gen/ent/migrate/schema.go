// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// DocumentsColumns holds the columns for the "documents" table.
	DocumentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "original_filename", Type: field.TypeString},
		{Name: "stored_file_reference", Type: field.TypeString},
		{Name: "document_type", Type: field.TypeString},
		{Name: "classification_confidence", Type: field.TypeFloat32, SchemaType: map[string]string{"postgres": "real"}},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// DocumentsTable holds the schema information for the "documents" table.
	DocumentsTable = &schema.Table{
		Name:       "documents",
		Columns:    DocumentsColumns,
		PrimaryKey: []*schema.Column{DocumentsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "document_created_at",
				Unique:  false,
				Columns: []*schema.Column{DocumentsColumns[5]},
			},
			{
				Name:    "document_document_type",
				Unique:  false,
				Columns: []*schema.Column{DocumentsColumns[3]},
			},
		},
	}
	// FieldsColumns holds the columns for the "fields" table.
	FieldsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "field_name", Type: field.TypeString},
		{Name: "original_value", Type: field.TypeString, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "corrected_value", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "corrected", Type: field.TypeBool, Default: false},
		{Name: "confidence", Type: field.TypeFloat32, SchemaType: map[string]string{"postgres": "real"}},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "document_id", Type: field.TypeUUID},
	}
	// FieldsTable holds the schema information for the "fields" table.
	FieldsTable = &schema.Table{
		Name:       "fields",
		Columns:    FieldsColumns,
		PrimaryKey: []*schema.Column{FieldsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "fields_documents_fields",
				Columns:    []*schema.Column{FieldsColumns[7]},
				RefColumns: []*schema.Column{DocumentsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "field_document_id_field_name",
				Unique:  true,
				Columns: []*schema.Column{FieldsColumns[7], FieldsColumns[1]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		DocumentsTable,
		FieldsTable,
	}
)

func init() {
	DocumentsTable.Annotation = &entsql.Annotation{
		Table: "documents",
	}
	FieldsTable.ForeignKeys[0].RefTable = DocumentsTable
	FieldsTable.Annotation = &entsql.Annotation{
		Table: "fields",
	}
}
