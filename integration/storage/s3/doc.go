// Package s3 handles warehouse photo storage on Amazon S3 and S3-compatible
// services.
//
// The browser uploads photos directly against presigned PUT URLs; the server
// only signs upload requests, derives public URLs, and deletes orphaned
// objects. Configuration comes from environment variables through the Config
// struct:
//
//	var cfg s3.Config
//	if err := config.Load(&cfg); err != nil {
//		log.Fatal(err)
//	}
//
//	store, err := s3.New(ctx, cfg)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	ticket, err := store.PresignUpload(ctx, "warehouses/123/front.jpg", "image/jpeg")
//	if err != nil {
//		log.Fatal(err)
//	}
//	// hand ticket.UploadURL to the browser, persist ticket.PublicURL
//
// Tests swap the AWS client through WithClient and WithPresigner, so no
// credentials or network access are needed.
package s3
