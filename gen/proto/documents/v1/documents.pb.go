// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.6
// 	protoc        (unknown)
// source: documents/v1/documents.proto

package documentspb

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	reflect "reflect"
	sync "sync"
	unsafe "unsafe"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

type Field struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	FieldName     string                 `protobuf:"bytes,2,opt,name=field_name,json=fieldName,proto3" json:"field_name,omitempty"`
	OriginalValue string                 `protobuf:"bytes,3,opt,name=original_value,json=originalValue,proto3" json:"original_value,omitempty"`
	// empty unless the field has been corrected
	CorrectedValue string  `protobuf:"bytes,4,opt,name=corrected_value,json=correctedValue,proto3" json:"corrected_value,omitempty"`
	Corrected      bool    `protobuf:"varint,5,opt,name=corrected,proto3" json:"corrected,omitempty"`
	Confidence     float32 `protobuf:"fixed32,6,opt,name=confidence,proto3" json:"confidence,omitempty"`
	ErrorMessage   string  `protobuf:"bytes,7,opt,name=error_message,json=errorMessage,proto3" json:"error_message,omitempty"`
	NeedsReview    bool    `protobuf:"varint,8,opt,name=needs_review,json=needsReview,proto3" json:"needs_review,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *Field) Reset() {
	*x = Field{}
	mi := &file_documents_v1_documents_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Field) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Field) ProtoMessage() {}

func (x *Field) ProtoReflect() protoreflect.Message {
	mi := &file_documents_v1_documents_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Field.ProtoReflect.Descriptor instead.
func (*Field) Descriptor() ([]byte, []int) {
	return file_documents_v1_documents_proto_rawDescGZIP(), []int{0}
}

func (x *Field) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Field) GetFieldName() string {
	if x != nil {
		return x.FieldName
	}
	return ""
}

func (x *Field) GetOriginalValue() string {
	if x != nil {
		return x.OriginalValue
	}
	return ""
}

func (x *Field) GetCorrectedValue() string {
	if x != nil {
		return x.CorrectedValue
	}
	return ""
}

func (x *Field) GetCorrected() bool {
	if x != nil {
		return x.Corrected
	}
	return false
}

func (x *Field) GetConfidence() float32 {
	if x != nil {
		return x.Confidence
	}
	return 0
}

func (x *Field) GetErrorMessage() string {
	if x != nil {
		return x.ErrorMessage
	}
	return ""
}

func (x *Field) GetNeedsReview() bool {
	if x != nil {
		return x.NeedsReview
	}
	return false
}

type Document struct {
	state            protoimpl.MessageState `protogen:"open.v1"`
	Id               string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	OriginalFilename string                 `protobuf:"bytes,2,opt,name=original_filename,json=originalFilename,proto3" json:"original_filename,omitempty"`
	// passport | drivers_license | ead_card
	DocumentType             string   `protobuf:"bytes,3,opt,name=document_type,json=documentType,proto3" json:"document_type,omitempty"`
	ClassificationConfidence float32  `protobuf:"fixed32,4,opt,name=classification_confidence,json=classificationConfidence,proto3" json:"classification_confidence,omitempty"`
	RequiresReview           bool     `protobuf:"varint,5,opt,name=requires_review,json=requiresReview,proto3" json:"requires_review,omitempty"`
	CreatedAt                string   `protobuf:"bytes,6,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	UpdatedAt                string   `protobuf:"bytes,7,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"`
	Fields                   []*Field `protobuf:"bytes,8,rep,name=fields,proto3" json:"fields,omitempty"`
	unknownFields            protoimpl.UnknownFields
	sizeCache                protoimpl.SizeCache
}

func (x *Document) Reset() {
	*x = Document{}
	mi := &file_documents_v1_documents_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Document) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Document) ProtoMessage() {}

func (x *Document) ProtoReflect() protoreflect.Message {
	mi := &file_documents_v1_documents_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Document.ProtoReflect.Descriptor instead.
func (*Document) Descriptor() ([]byte, []int) {
	return file_documents_v1_documents_proto_rawDescGZIP(), []int{1}
}

func (x *Document) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Document) GetOriginalFilename() string {
	if x != nil {
		return x.OriginalFilename
	}
	return ""
}

func (x *Document) GetDocumentType() string {
	if x != nil {
		return x.DocumentType
	}
	return ""
}

func (x *Document) GetClassificationConfidence() float32 {
	if x != nil {
		return x.ClassificationConfidence
	}
	return 0
}

func (x *Document) GetRequiresReview() bool {
	if x != nil {
		return x.RequiresReview
	}
	return false
}

func (x *Document) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

func (x *Document) GetUpdatedAt() string {
	if x != nil {
		return x.UpdatedAt
	}
	return ""
}

func (x *Document) GetFields() []*Field {
	if x != nil {
		return x.Fields
	}
	return nil
}

type ProcessDocumentRequest struct {
	state    protoimpl.MessageState `protogen:"open.v1"`
	Filename string                 `protobuf:"bytes,1,opt,name=filename,proto3" json:"filename,omitempty"`
	// application/pdf, image/jpeg or image/png; derived from the filename
	// extension when empty
	MediaType string `protobuf:"bytes,2,opt,name=media_type,json=mediaType,proto3" json:"media_type,omitempty"`
	Content   []byte `protobuf:"bytes,3,opt,name=content,proto3" json:"content,omitempty"`
	// optional OCR text used for classification tie-breaking
	TextHint      string `protobuf:"bytes,4,opt,name=text_hint,json=textHint,proto3" json:"text_hint,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ProcessDocumentRequest) Reset() {
	*x = ProcessDocumentRequest{}
	mi := &file_documents_v1_documents_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ProcessDocumentRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ProcessDocumentRequest) ProtoMessage() {}

func (x *ProcessDocumentRequest) ProtoReflect() protoreflect.Message {
	mi := &file_documents_v1_documents_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ProcessDocumentRequest.ProtoReflect.Descriptor instead.
func (*ProcessDocumentRequest) Descriptor() ([]byte, []int) {
	return file_documents_v1_documents_proto_rawDescGZIP(), []int{2}
}

func (x *ProcessDocumentRequest) GetFilename() string {
	if x != nil {
		return x.Filename
	}
	return ""
}

func (x *ProcessDocumentRequest) GetMediaType() string {
	if x != nil {
		return x.MediaType
	}
	return ""
}

func (x *ProcessDocumentRequest) GetContent() []byte {
	if x != nil {
		return x.Content
	}
	return nil
}

func (x *ProcessDocumentRequest) GetTextHint() string {
	if x != nil {
		return x.TextHint
	}
	return ""
}

type ProcessDocumentResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Document      *Document              `protobuf:"bytes,1,opt,name=document,proto3" json:"document,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ProcessDocumentResponse) Reset() {
	*x = ProcessDocumentResponse{}
	mi := &file_documents_v1_documents_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ProcessDocumentResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ProcessDocumentResponse) ProtoMessage() {}

func (x *ProcessDocumentResponse) ProtoReflect() protoreflect.Message {
	mi := &file_documents_v1_documents_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ProcessDocumentResponse.ProtoReflect.Descriptor instead.
func (*ProcessDocumentResponse) Descriptor() ([]byte, []int) {
	return file_documents_v1_documents_proto_rawDescGZIP(), []int{3}
}

func (x *ProcessDocumentResponse) GetDocument() *Document {
	if x != nil {
		return x.Document
	}
	return nil
}

type GetDocumentRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	DocumentId    string                 `protobuf:"bytes,1,opt,name=document_id,json=documentId,proto3" json:"document_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetDocumentRequest) Reset() {
	*x = GetDocumentRequest{}
	mi := &file_documents_v1_documents_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetDocumentRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetDocumentRequest) ProtoMessage() {}

func (x *GetDocumentRequest) ProtoReflect() protoreflect.Message {
	mi := &file_documents_v1_documents_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetDocumentRequest.ProtoReflect.Descriptor instead.
func (*GetDocumentRequest) Descriptor() ([]byte, []int) {
	return file_documents_v1_documents_proto_rawDescGZIP(), []int{4}
}

func (x *GetDocumentRequest) GetDocumentId() string {
	if x != nil {
		return x.DocumentId
	}
	return ""
}

type GetDocumentResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Document      *Document              `protobuf:"bytes,1,opt,name=document,proto3" json:"document,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetDocumentResponse) Reset() {
	*x = GetDocumentResponse{}
	mi := &file_documents_v1_documents_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetDocumentResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetDocumentResponse) ProtoMessage() {}

func (x *GetDocumentResponse) ProtoReflect() protoreflect.Message {
	mi := &file_documents_v1_documents_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetDocumentResponse.ProtoReflect.Descriptor instead.
func (*GetDocumentResponse) Descriptor() ([]byte, []int) {
	return file_documents_v1_documents_proto_rawDescGZIP(), []int{5}
}

func (x *GetDocumentResponse) GetDocument() *Document {
	if x != nil {
		return x.Document
	}
	return nil
}

type ListDocumentsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Limit         int32                  `protobuf:"varint,1,opt,name=limit,proto3" json:"limit,omitempty"`
	Offset        int32                  `protobuf:"varint,2,opt,name=offset,proto3" json:"offset,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListDocumentsRequest) Reset() {
	*x = ListDocumentsRequest{}
	mi := &file_documents_v1_documents_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListDocumentsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListDocumentsRequest) ProtoMessage() {}

func (x *ListDocumentsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_documents_v1_documents_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListDocumentsRequest.ProtoReflect.Descriptor instead.
func (*ListDocumentsRequest) Descriptor() ([]byte, []int) {
	return file_documents_v1_documents_proto_rawDescGZIP(), []int{6}
}

func (x *ListDocumentsRequest) GetLimit() int32 {
	if x != nil {
		return x.Limit
	}
	return 0
}

func (x *ListDocumentsRequest) GetOffset() int32 {
	if x != nil {
		return x.Offset
	}
	return 0
}

type ListDocumentsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Documents     []*Document            `protobuf:"bytes,1,rep,name=documents,proto3" json:"documents,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListDocumentsResponse) Reset() {
	*x = ListDocumentsResponse{}
	mi := &file_documents_v1_documents_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListDocumentsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListDocumentsResponse) ProtoMessage() {}

func (x *ListDocumentsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_documents_v1_documents_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListDocumentsResponse.ProtoReflect.Descriptor instead.
func (*ListDocumentsResponse) Descriptor() ([]byte, []int) {
	return file_documents_v1_documents_proto_rawDescGZIP(), []int{7}
}

func (x *ListDocumentsResponse) GetDocuments() []*Document {
	if x != nil {
		return x.Documents
	}
	return nil
}

type ApplyCorrectionsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	DocumentId    string                 `protobuf:"bytes,1,opt,name=document_id,json=documentId,proto3" json:"document_id,omitempty"`
	Corrections   map[string]string      `protobuf:"bytes,2,rep,name=corrections,proto3" json:"corrections,omitempty" protobuf_key:"bytes,1,opt,name=key" protobuf_val:"bytes,2,opt,name=value"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ApplyCorrectionsRequest) Reset() {
	*x = ApplyCorrectionsRequest{}
	mi := &file_documents_v1_documents_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ApplyCorrectionsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ApplyCorrectionsRequest) ProtoMessage() {}

func (x *ApplyCorrectionsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_documents_v1_documents_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ApplyCorrectionsRequest.ProtoReflect.Descriptor instead.
func (*ApplyCorrectionsRequest) Descriptor() ([]byte, []int) {
	return file_documents_v1_documents_proto_rawDescGZIP(), []int{8}
}

func (x *ApplyCorrectionsRequest) GetDocumentId() string {
	if x != nil {
		return x.DocumentId
	}
	return ""
}

func (x *ApplyCorrectionsRequest) GetCorrections() map[string]string {
	if x != nil {
		return x.Corrections
	}
	return nil
}

type ApplyCorrectionsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Document      *Document              `protobuf:"bytes,1,opt,name=document,proto3" json:"document,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ApplyCorrectionsResponse) Reset() {
	*x = ApplyCorrectionsResponse{}
	mi := &file_documents_v1_documents_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ApplyCorrectionsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ApplyCorrectionsResponse) ProtoMessage() {}

func (x *ApplyCorrectionsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_documents_v1_documents_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ApplyCorrectionsResponse.ProtoReflect.Descriptor instead.
func (*ApplyCorrectionsResponse) Descriptor() ([]byte, []int) {
	return file_documents_v1_documents_proto_rawDescGZIP(), []int{9}
}

func (x *ApplyCorrectionsResponse) GetDocument() *Document {
	if x != nil {
		return x.Document
	}
	return nil
}

type UpdateDocumentTypeRequest struct {
	state      protoimpl.MessageState `protogen:"open.v1"`
	DocumentId string                 `protobuf:"bytes,1,opt,name=document_id,json=documentId,proto3" json:"document_id,omitempty"`
	// passport | drivers_license | ead_card
	DocumentType  string `protobuf:"bytes,2,opt,name=document_type,json=documentType,proto3" json:"document_type,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UpdateDocumentTypeRequest) Reset() {
	*x = UpdateDocumentTypeRequest{}
	mi := &file_documents_v1_documents_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UpdateDocumentTypeRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UpdateDocumentTypeRequest) ProtoMessage() {}

func (x *UpdateDocumentTypeRequest) ProtoReflect() protoreflect.Message {
	mi := &file_documents_v1_documents_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UpdateDocumentTypeRequest.ProtoReflect.Descriptor instead.
func (*UpdateDocumentTypeRequest) Descriptor() ([]byte, []int) {
	return file_documents_v1_documents_proto_rawDescGZIP(), []int{10}
}

func (x *UpdateDocumentTypeRequest) GetDocumentId() string {
	if x != nil {
		return x.DocumentId
	}
	return ""
}

func (x *UpdateDocumentTypeRequest) GetDocumentType() string {
	if x != nil {
		return x.DocumentType
	}
	return ""
}

type UpdateDocumentTypeResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Document      *Document              `protobuf:"bytes,1,opt,name=document,proto3" json:"document,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UpdateDocumentTypeResponse) Reset() {
	*x = UpdateDocumentTypeResponse{}
	mi := &file_documents_v1_documents_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UpdateDocumentTypeResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UpdateDocumentTypeResponse) ProtoMessage() {}

func (x *UpdateDocumentTypeResponse) ProtoReflect() protoreflect.Message {
	mi := &file_documents_v1_documents_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UpdateDocumentTypeResponse.ProtoReflect.Descriptor instead.
func (*UpdateDocumentTypeResponse) Descriptor() ([]byte, []int) {
	return file_documents_v1_documents_proto_rawDescGZIP(), []int{11}
}

func (x *UpdateDocumentTypeResponse) GetDocument() *Document {
	if x != nil {
		return x.Document
	}
	return nil
}

type DeleteDocumentRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	DocumentId    string                 `protobuf:"bytes,1,opt,name=document_id,json=documentId,proto3" json:"document_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeleteDocumentRequest) Reset() {
	*x = DeleteDocumentRequest{}
	mi := &file_documents_v1_documents_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeleteDocumentRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeleteDocumentRequest) ProtoMessage() {}

func (x *DeleteDocumentRequest) ProtoReflect() protoreflect.Message {
	mi := &file_documents_v1_documents_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeleteDocumentRequest.ProtoReflect.Descriptor instead.
func (*DeleteDocumentRequest) Descriptor() ([]byte, []int) {
	return file_documents_v1_documents_proto_rawDescGZIP(), []int{12}
}

func (x *DeleteDocumentRequest) GetDocumentId() string {
	if x != nil {
		return x.DocumentId
	}
	return ""
}

type DeleteDocumentResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeleteDocumentResponse) Reset() {
	*x = DeleteDocumentResponse{}
	mi := &file_documents_v1_documents_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeleteDocumentResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeleteDocumentResponse) ProtoMessage() {}

func (x *DeleteDocumentResponse) ProtoReflect() protoreflect.Message {
	mi := &file_documents_v1_documents_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeleteDocumentResponse.ProtoReflect.Descriptor instead.
func (*DeleteDocumentResponse) Descriptor() ([]byte, []int) {
	return file_documents_v1_documents_proto_rawDescGZIP(), []int{13}
}

type DeleteAllDocumentsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeleteAllDocumentsRequest) Reset() {
	*x = DeleteAllDocumentsRequest{}
	mi := &file_documents_v1_documents_proto_msgTypes[14]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeleteAllDocumentsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeleteAllDocumentsRequest) ProtoMessage() {}

func (x *DeleteAllDocumentsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_documents_v1_documents_proto_msgTypes[14]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeleteAllDocumentsRequest.ProtoReflect.Descriptor instead.
func (*DeleteAllDocumentsRequest) Descriptor() ([]byte, []int) {
	return file_documents_v1_documents_proto_rawDescGZIP(), []int{14}
}

type DeleteAllDocumentsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	DeletedCount  int32                  `protobuf:"varint,1,opt,name=deleted_count,json=deletedCount,proto3" json:"deleted_count,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeleteAllDocumentsResponse) Reset() {
	*x = DeleteAllDocumentsResponse{}
	mi := &file_documents_v1_documents_proto_msgTypes[15]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeleteAllDocumentsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeleteAllDocumentsResponse) ProtoMessage() {}

func (x *DeleteAllDocumentsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_documents_v1_documents_proto_msgTypes[15]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeleteAllDocumentsResponse.ProtoReflect.Descriptor instead.
func (*DeleteAllDocumentsResponse) Descriptor() ([]byte, []int) {
	return file_documents_v1_documents_proto_rawDescGZIP(), []int{15}
}

func (x *DeleteAllDocumentsResponse) GetDeletedCount() int32 {
	if x != nil {
		return x.DeletedCount
	}
	return 0
}

type ExportDocumentsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportDocumentsRequest) Reset() {
	*x = ExportDocumentsRequest{}
	mi := &file_documents_v1_documents_proto_msgTypes[16]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportDocumentsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportDocumentsRequest) ProtoMessage() {}

func (x *ExportDocumentsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_documents_v1_documents_proto_msgTypes[16]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportDocumentsRequest.ProtoReflect.Descriptor instead.
func (*ExportDocumentsRequest) Descriptor() ([]byte, []int) {
	return file_documents_v1_documents_proto_rawDescGZIP(), []int{16}
}

type ExportDocumentsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Xlsx          []byte                 `protobuf:"bytes,1,opt,name=xlsx,proto3" json:"xlsx,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportDocumentsResponse) Reset() {
	*x = ExportDocumentsResponse{}
	mi := &file_documents_v1_documents_proto_msgTypes[17]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportDocumentsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportDocumentsResponse) ProtoMessage() {}

func (x *ExportDocumentsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_documents_v1_documents_proto_msgTypes[17]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportDocumentsResponse.ProtoReflect.Descriptor instead.
func (*ExportDocumentsResponse) Descriptor() ([]byte, []int) {
	return file_documents_v1_documents_proto_rawDescGZIP(), []int{17}
}

func (x *ExportDocumentsResponse) GetXlsx() []byte {
	if x != nil {
		return x.Xlsx
	}
	return nil
}

var File_documents_v1_documents_proto protoreflect.FileDescriptor

const file_documents_v1_documents_proto_rawDesc = "" +
	"\n" +
	"\x1cdocuments/v1/documents.proto\x12\fdocuments.v1\"\x8c\x02\n" +
	"\x05Field\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x1d\n" +
	"\n" +
	"field_name\x18\x02 \x01(\tR\tfieldName\x12%\n" +
	"\x0eoriginal_value\x18\x03 \x01(\tR\roriginalValue\x12'\n" +
	"\x0fcorrected_value\x18\x04 \x01(\tR\x0ecorrectedValue\x12\x1c\n" +
	"\tcorrected\x18\x05 \x01(\bR\tcorrected\x12\x1e\n" +
	"\n" +
	"confidence\x18\x06 \x01(\x02R\n" +
	"confidence\x12#\n" +
	"\rerror_message\x18\a \x01(\tR\ferrorMessage\x12!\n" +
	"\fneeds_review\x18\b \x01(\bR\vneedsReview\"\xbd\x02\n" +
	"\bDocument\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12+\n" +
	"\x11original_filename\x18\x02 \x01(\tR\x10originalFilename\x12#\n" +
	"\rdocument_type\x18\x03 \x01(\tR\fdocumentType\x12;\n" +
	"\x19classification_confidence\x18\x04 \x01(\x02R\x18classificationConfidence\x12'\n" +
	"\x0frequires_review\x18\x05 \x01(\bR\x0erequiresReview\x12\x1d\n" +
	"\n" +
	"created_at\x18\x06 \x01(\tR\tcreatedAt\x12\x1d\n" +
	"\n" +
	"updated_at\x18\a \x01(\tR\tupdatedAt\x12+\n" +
	"\x06fields\x18\b \x03(\v2\x13.documents.v1.FieldR\x06fields\"\x8a\x01\n" +
	"\x16ProcessDocumentRequest\x12\x1a\n" +
	"\bfilename\x18\x01 \x01(\tR\bfilename\x12\x1d\n" +
	"\n" +
	"media_type\x18\x02 \x01(\tR\tmediaType\x12\x18\n" +
	"\acontent\x18\x03 \x01(\fR\acontent\x12\x1b\n" +
	"\ttext_hint\x18\x04 \x01(\tR\btextHint\"M\n" +
	"\x17ProcessDocumentResponse\x122\n" +
	"\bdocument\x18\x01 \x01(\v2\x16.documents.v1.DocumentR\bdocument\"5\n" +
	"\x12GetDocumentRequest\x12\x1f\n" +
	"\vdocument_id\x18\x01 \x01(\tR\n" +
	"documentId\"I\n" +
	"\x13GetDocumentResponse\x122\n" +
	"\bdocument\x18\x01 \x01(\v2\x16.documents.v1.DocumentR\bdocument\"D\n" +
	"\x14ListDocumentsRequest\x12\x14\n" +
	"\x05limit\x18\x01 \x01(\x05R\x05limit\x12\x16\n" +
	"\x06offset\x18\x02 \x01(\x05R\x06offset\"M\n" +
	"\x15ListDocumentsResponse\x124\n" +
	"\tdocuments\x18\x01 \x03(\v2\x16.documents.v1.DocumentR\tdocuments\"\xd4\x01\n" +
	"\x17ApplyCorrectionsRequest\x12\x1f\n" +
	"\vdocument_id\x18\x01 \x01(\tR\n" +
	"documentId\x12X\n" +
	"\vcorrections\x18\x02 \x03(\v26.documents.v1.ApplyCorrectionsRequest.CorrectionsEntryR\vcorrections\x1a>\n" +
	"\x10CorrectionsEntry\x12\x10\n" +
	"\x03key\x18\x01 \x01(\tR\x03key\x12\x14\n" +
	"\x05value\x18\x02 \x01(\tR\x05value:\x028\x01\"N\n" +
	"\x18ApplyCorrectionsResponse\x122\n" +
	"\bdocument\x18\x01 \x01(\v2\x16.documents.v1.DocumentR\bdocument\"a\n" +
	"\x19UpdateDocumentTypeRequest\x12\x1f\n" +
	"\vdocument_id\x18\x01 \x01(\tR\n" +
	"documentId\x12#\n" +
	"\rdocument_type\x18\x02 \x01(\tR\fdocumentType\"P\n" +
	"\x1aUpdateDocumentTypeResponse\x122\n" +
	"\bdocument\x18\x01 \x01(\v2\x16.documents.v1.DocumentR\bdocument\"8\n" +
	"\x15DeleteDocumentRequest\x12\x1f\n" +
	"\vdocument_id\x18\x01 \x01(\tR\n" +
	"documentId\"\x18\n" +
	"\x16DeleteDocumentResponse\"\x1b\n" +
	"\x19DeleteAllDocumentsRequest\"A\n" +
	"\x1aDeleteAllDocumentsResponse\x12#\n" +
	"\rdeleted_count\x18\x01 \x01(\x05R\fdeletedCount\"\x18\n" +
	"\x16ExportDocumentsRequest\"-\n" +
	"\x17ExportDocumentsResponse\x12\x12\n" +
	"\x04xlsx\x18\x01 \x01(\fR\x04xlsx2\x92\x06\n" +
	"\x10DocumentsService\x12^\n" +
	"\x0fProcessDocument\x12$.documents.v1.ProcessDocumentRequest\x1a%.documents.v1.ProcessDocumentResponse\x12R\n" +
	"\vGetDocument\x12 .documents.v1.GetDocumentRequest\x1a!.documents.v1.GetDocumentResponse\x12X\n" +
	"\rListDocuments\x12\".documents.v1.ListDocumentsRequest\x1a#.documents.v1.ListDocumentsResponse\x12a\n" +
	"\x10ApplyCorrections\x12%.documents.v1.ApplyCorrectionsRequest\x1a&.documents.v1.ApplyCorrectionsResponse\x12g\n" +
	"\x12UpdateDocumentType\x12'.documents.v1.UpdateDocumentTypeRequest\x1a(.documents.v1.UpdateDocumentTypeResponse\x12[\n" +
	"\x0eDeleteDocument\x12#.documents.v1.DeleteDocumentRequest\x1a$.documents.v1.DeleteDocumentResponse\x12g\n" +
	"\x12DeleteAllDocuments\x12'.documents.v1.DeleteAllDocumentsRequest\x1a(.documents.v1.DeleteAllDocumentsResponse\x12^\n" +
	"\x0fExportDocuments\x12$.documents.v1.ExportDocumentsRequest\x1a%.documents.v1.ExportDocumentsResponseBBZ@github.com/docuflow/idextract/gen/proto/documents/v1;documentspbb\x06proto3"

var (
	file_documents_v1_documents_proto_rawDescOnce sync.Once
	file_documents_v1_documents_proto_rawDescData []byte
)

func file_documents_v1_documents_proto_rawDescGZIP() []byte {
	file_documents_v1_documents_proto_rawDescOnce.Do(func() {
		file_documents_v1_documents_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_documents_v1_documents_proto_rawDesc), len(file_documents_v1_documents_proto_rawDesc)))
	})
	return file_documents_v1_documents_proto_rawDescData
}

var file_documents_v1_documents_proto_msgTypes = make([]protoimpl.MessageInfo, 19)
var file_documents_v1_documents_proto_goTypes = []any{
	(*Field)(nil),                      // 0: documents.v1.Field
	(*Document)(nil),                   // 1: documents.v1.Document
	(*ProcessDocumentRequest)(nil),     // 2: documents.v1.ProcessDocumentRequest
	(*ProcessDocumentResponse)(nil),    // 3: documents.v1.ProcessDocumentResponse
	(*GetDocumentRequest)(nil),         // 4: documents.v1.GetDocumentRequest
	(*GetDocumentResponse)(nil),        // 5: documents.v1.GetDocumentResponse
	(*ListDocumentsRequest)(nil),       // 6: documents.v1.ListDocumentsRequest
	(*ListDocumentsResponse)(nil),      // 7: documents.v1.ListDocumentsResponse
	(*ApplyCorrectionsRequest)(nil),    // 8: documents.v1.ApplyCorrectionsRequest
	(*ApplyCorrectionsResponse)(nil),   // 9: documents.v1.ApplyCorrectionsResponse
	(*UpdateDocumentTypeRequest)(nil),  // 10: documents.v1.UpdateDocumentTypeRequest
	(*UpdateDocumentTypeResponse)(nil), // 11: documents.v1.UpdateDocumentTypeResponse
	(*DeleteDocumentRequest)(nil),      // 12: documents.v1.DeleteDocumentRequest
	(*DeleteDocumentResponse)(nil),     // 13: documents.v1.DeleteDocumentResponse
	(*DeleteAllDocumentsRequest)(nil),  // 14: documents.v1.DeleteAllDocumentsRequest
	(*DeleteAllDocumentsResponse)(nil), // 15: documents.v1.DeleteAllDocumentsResponse
	(*ExportDocumentsRequest)(nil),     // 16: documents.v1.ExportDocumentsRequest
	(*ExportDocumentsResponse)(nil),    // 17: documents.v1.ExportDocumentsResponse
	nil,                                // 18: documents.v1.ApplyCorrectionsRequest.CorrectionsEntry
}
var file_documents_v1_documents_proto_depIdxs = []int32{
	0,  // 0: documents.v1.Document.fields:type_name -> documents.v1.Field
	1,  // 1: documents.v1.ProcessDocumentResponse.document:type_name -> documents.v1.Document
	1,  // 2: documents.v1.GetDocumentResponse.document:type_name -> documents.v1.Document
	1,  // 3: documents.v1.ListDocumentsResponse.documents:type_name -> documents.v1.Document
	18, // 4: documents.v1.ApplyCorrectionsRequest.corrections:type_name -> documents.v1.ApplyCorrectionsRequest.CorrectionsEntry
	1,  // 5: documents.v1.ApplyCorrectionsResponse.document:type_name -> documents.v1.Document
	1,  // 6: documents.v1.UpdateDocumentTypeResponse.document:type_name -> documents.v1.Document
	2,  // 7: documents.v1.DocumentsService.ProcessDocument:input_type -> documents.v1.ProcessDocumentRequest
	4,  // 8: documents.v1.DocumentsService.GetDocument:input_type -> documents.v1.GetDocumentRequest
	6,  // 9: documents.v1.DocumentsService.ListDocuments:input_type -> documents.v1.ListDocumentsRequest
	8,  // 10: documents.v1.DocumentsService.ApplyCorrections:input_type -> documents.v1.ApplyCorrectionsRequest
	10, // 11: documents.v1.DocumentsService.UpdateDocumentType:input_type -> documents.v1.UpdateDocumentTypeRequest
	12, // 12: documents.v1.DocumentsService.DeleteDocument:input_type -> documents.v1.DeleteDocumentRequest
	14, // 13: documents.v1.DocumentsService.DeleteAllDocuments:input_type -> documents.v1.DeleteAllDocumentsRequest
	16, // 14: documents.v1.DocumentsService.ExportDocuments:input_type -> documents.v1.ExportDocumentsRequest
	3,  // 15: documents.v1.DocumentsService.ProcessDocument:output_type -> documents.v1.ProcessDocumentResponse
	5,  // 16: documents.v1.DocumentsService.GetDocument:output_type -> documents.v1.GetDocumentResponse
	7,  // 17: documents.v1.DocumentsService.ListDocuments:output_type -> documents.v1.ListDocumentsResponse
	9,  // 18: documents.v1.DocumentsService.ApplyCorrections:output_type -> documents.v1.ApplyCorrectionsResponse
	11, // 19: documents.v1.DocumentsService.UpdateDocumentType:output_type -> documents.v1.UpdateDocumentTypeResponse
	13, // 20: documents.v1.DocumentsService.DeleteDocument:output_type -> documents.v1.DeleteDocumentResponse
	15, // 21: documents.v1.DocumentsService.DeleteAllDocuments:output_type -> documents.v1.DeleteAllDocumentsResponse
	17, // 22: documents.v1.DocumentsService.ExportDocuments:output_type -> documents.v1.ExportDocumentsResponse
	15, // [15:23] is the sub-list for method output_type
	7,  // [7:15] is the sub-list for method input_type
	7,  // [7:7] is the sub-list for extension type_name
	7,  // [7:7] is the sub-list for extension extendee
	0,  // [0:7] is the sub-list for field type_name
}

func init() { file_documents_v1_documents_proto_init() }
func file_documents_v1_documents_proto_init() {
	if File_documents_v1_documents_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_documents_v1_documents_proto_rawDesc), len(file_documents_v1_documents_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   19,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_documents_v1_documents_proto_goTypes,
		DependencyIndexes: file_documents_v1_documents_proto_depIdxs,
		MessageInfos:      file_documents_v1_documents_proto_msgTypes,
	}.Build()
	File_documents_v1_documents_proto = out.File
	file_documents_v1_documents_proto_goTypes = nil
	file_documents_v1_documents_proto_depIdxs = nil
}
