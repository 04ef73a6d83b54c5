// Package ffmpeg wraps the external ffmpeg binary used to transcode FLAC
// files to MP3. The rest of the system talks to the Client interface so tests
// can substitute a fake.
package ffmpeg
