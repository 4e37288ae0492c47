package documents

// ContentTypeForExt maps an upload extension to the content type used when
// serving the original file. Unrecognized types download as an opaque
// octet stream.
func ContentTypeForExt(ext string) string {
	switch ext {
	case "pdf":
		return "application/pdf"
	case "docx":
		return "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	case "doc":
		return "application/msword"
	case "xlsx":
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	case "xls":
		return "application/vnd.ms-excel"
	case "pptx":
		return "application/vnd.openxmlformats-officedocument.presentationml.presentation"
	case "ppt":
		return "application/vnd.ms-powerpoint"
	case "msg":
		return "application/vnd.ms-outlook"
	case "eml":
		return "message/rfc822"
	case "txt":
		return "text/plain; charset=utf-8"
	case "csv":
		return "text/csv; charset=utf-8"
	default:
		return "application/octet-stream"
	}
}
